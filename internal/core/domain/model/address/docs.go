// Package address provides the Address entity: a pickup or delivery location
// owned by exactly one user. Orders reference addresses by id and never mutate them.
package address
