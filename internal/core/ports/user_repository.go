// Package ports defines the contracts between the application core and its
// adapters: repositories, the unit of work, security and event publishing.
package ports

import (
	"context"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user. A taken email is reported as
	// errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *user.User) error

	// Get returns the user or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*user.User, error)

	// GetByEmail looks a user up by normalized email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
