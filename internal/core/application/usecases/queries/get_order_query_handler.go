package queries

import (
	"context"

	"swiftdrop/internal/core/ports"
	"swiftdrop/internal/pkg/errs"
)

// GetOrderQueryHandler returns an order with addresses, owner, rider and
// tracking history. Lookups are scoped to the caller: another user's order is
// reported as errs.ObjectNotFoundError.
type GetOrderQueryHandler struct {
	orders OrderReader
}

func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (ports.OrderView, error) {
	if err := query.Validate(); err != nil {
		return ports.OrderView{}, err
	}

	owner := query.Identity().UserID()
	view, err := h.orders.FindByID(ctx, query.OrderID(), &owner)
	if err != nil {
		return ports.OrderView{}, errs.AsInternal("failed to get order", err)
	}

	return view, nil
}
