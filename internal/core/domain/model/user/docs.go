// Package user provides the User aggregate, its Role, and Identity, the
// verified caller value that the authentication layer hands to every use case.
//
// Key business rules:
//   - Email addresses are unique, trimmed and lower-cased
//   - Users register with role USER; ADMIN and RIDER are assigned out of band
//   - Riders may carry a vehicle type, other roles may not
//   - The password hash never leaves the aggregate except for persistence
package user
