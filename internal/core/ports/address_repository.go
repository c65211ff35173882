package ports

import (
	"context"

	"swiftdrop/internal/core/domain/model/address"
	"swiftdrop/internal/core/domain/model/kernel"
)

// AddressRepository defines the persistence contract for the address book.
type AddressRepository interface {
	Add(ctx context.Context, aggregate *address.Address) error

	// GetOwned returns the address only when it belongs to userID; otherwise
	// errs.ObjectNotFoundError.
	GetOwned(ctx context.Context, id, userID kernel.ID) (*address.Address, error)

	// ListByUser returns the user's addresses, newest first.
	ListByUser(ctx context.Context, userID kernel.ID) ([]*address.Address, error)
}
