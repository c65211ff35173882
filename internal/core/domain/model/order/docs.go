// Package order provides the Order aggregate of the delivery system: a single
// delivery request from a user with its computed charges, status and the
// append-only tracking history.
//
// The package includes:
//   - Order: the aggregate root, created by PlaceOrder and rebuilt by RestoreOrder
//   - Details: what is being delivered and when it should be picked up
//   - Charges: base fee, delivery fee, total and estimated delivery
//   - Status: the lifecycle state; orders are placed as PENDING
//   - TrackingEntry: one status/note snapshot in the order history
//
// Key business rules:
//   - Pickup and delivery addresses must differ
//   - Item description is required and at most 500 characters
//   - Special instructions are at most 1000 characters
//   - Estimated value, when given, is not negative
//   - Scheduled pickup, when given, is strictly in the future at placement time
//   - Total amount equals base fee plus delivery fee; charges never change after placement
//   - Placing an order records a PENDING tracking entry "Order placed successfully"
package order
