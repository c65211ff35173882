package commands

import (
	"errors"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/user"
	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
	ErrInvalidOrderID = errs.NewValueIsInvalidError("invalid order ID format")
)

// CancelOrderCommand is a request to cancel one of the caller's orders.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	identity user.Identity
	orderID  kernel.ID

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(identity user.Identity, orderID string) (CancelOrderCommand, error) {
	if err := identity.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}

	id, err := kernel.IDFromString(orderID)
	if err != nil {
		return CancelOrderCommand{}, ErrInvalidOrderID
	}

	return CancelOrderCommand{
		identity: identity,
		orderID:  id,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) Identity() user.Identity {
	return c.identity
}

func (c CancelOrderCommand) OrderID() kernel.ID {
	return c.orderID
}
