// Package queries contains read-only operations. Query handlers never open a
// transaction; they read through the repositories bound to the shared pool.
package queries

import (
	"context"

	"swiftdrop/internal/core/domain/model/address"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/user"
	"swiftdrop/internal/core/ports"
)

type (
	OrderReader interface {
		FindByID(ctx context.Context, orderID kernel.ID, userID *kernel.ID) (ports.OrderView, error)
		FindByUser(ctx context.Context, userID kernel.ID, page kernel.Page) ([]ports.OrderView, int64, error)
	}

	UserReader interface {
		Get(ctx context.Context, id kernel.ID) (*user.User, error)
	}

	AddressReader interface {
		ListByUser(ctx context.Context, userID kernel.ID) ([]*address.Address, error)
	}
)
