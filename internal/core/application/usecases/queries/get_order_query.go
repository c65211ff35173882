package queries

import (
	"errors"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/user"
	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrInvalidOrderID = errs.NewValueIsInvalidError("invalid order ID format")
)

// GetOrderQuery fetches one of the caller's orders by id.
//
// Example:
//
//	query, err := NewGetOrderQuery(identity, c.Param("orderId"))
//	if err != nil {
//	    return err // ErrInvalidOrderID for anything that is not a CUID
//	}
//	view, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	identity user.Identity
	orderID  kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(identity user.Identity, orderID string) (GetOrderQuery, error) {
	if err := identity.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	id, err := kernel.IDFromString(orderID)
	if err != nil {
		return GetOrderQuery{}, ErrInvalidOrderID
	}

	return GetOrderQuery{
		identity: identity,
		orderID:  id,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Identity() user.Identity {
	return q.identity
}

func (q GetOrderQuery) OrderID() kernel.ID {
	return q.orderID
}
