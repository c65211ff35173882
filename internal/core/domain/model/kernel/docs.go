// Package kernel provides the shared value objects of the SwiftDrop domain model.
//
// The package includes:
//   - ID: a CUID identifier used by users, addresses, orders and tracking entries
//   - Page: a validated page/limit window over an ordered collection
//
// Both are immutable and must be created through their constructors.
package kernel
