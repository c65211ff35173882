package ports

import (
	"context"

	"swiftdrop/internal/core/domain/model/address"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its tracking history.
	// Both writes belong to the caller's unit of work.
	Add(ctx context.Context, aggregate *order.Order) error

	// FindByID returns the order with its addresses, owner, rider and tracking
	// history (newest first). When userID is not nil the lookup is scoped to
	// that owner, so another user's order is reported as not found.
	//
	// Returns errs.ObjectNotFoundError when no row matches.
	FindByID(ctx context.Context, orderID kernel.ID, userID *kernel.ID) (OrderView, error)

	// FindByUser returns one page of the user's orders, newest first, and the
	// total number of orders the user has. Page bounds are checked by kernel.Page.
	FindByUser(ctx context.Context, userID kernel.ID, page kernel.Page) ([]OrderView, int64, error)
}

// UserSummary is the public projection of an order's owner.
type UserSummary struct {
	ID    kernel.ID
	Name  string
	Email string
	Phone string
}

// RiderSummary is the public projection of the rider assigned to an order.
type RiderSummary struct {
	ID          kernel.ID
	Name        string
	Phone       string
	VehicleType *string
}

// OrderView is an order joined with everything needed to display it.
// Rider is nil until a rider is assigned.
type OrderView struct {
	Order           *order.Order
	PickupAddress   *address.Address
	DeliveryAddress *address.Address
	User            UserSummary
	Rider           *RiderSummary
}
