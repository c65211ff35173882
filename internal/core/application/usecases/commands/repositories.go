// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"swiftdrop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest combination it needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	AddressRepoFactory interface {
		AddressRepository() ports.AddressRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	SessionRepoFactory interface {
		SessionRepository() ports.SessionRepository
	}

	// OrderUoW serves order placement: address lookups plus order writes.
	//
	// Example:
	//   uow := factory.Create()
	//   addresses := uow.AddressRepository() // before Begin: shared pool
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.OrderRepository().Add(ctx, o) // inside the transaction
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		AddressRepoFactory
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AuthUoW serves account and session operations.
	AuthUoW interface {
		TxManager
		UserRepoFactory
		SessionRepoFactory
	}

	AuthUoWFactory interface {
		Create() AuthUoW
	}

	// AddressUoW serves address book writes.
	AddressUoW interface {
		TxManager
		AddressRepoFactory
	}

	AddressUoWFactory interface {
		Create() AddressUoW
	}
)
