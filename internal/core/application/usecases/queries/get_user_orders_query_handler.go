package queries

import (
	"context"

	"swiftdrop/internal/pkg/errs"
)

// GetUserOrdersQueryHandler pages through the caller's orders, newest first.
type GetUserOrdersQueryHandler struct {
	orders OrderReader
}

func NewGetUserOrdersQueryHandler(orders OrderReader) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{orders: orders}
}

// Handle returns the page and its pagination; Pages is ceil(Total/Limit).
func (h GetUserOrdersQueryHandler) Handle(ctx context.Context, query GetUserOrdersQuery) (GetUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserOrdersQueryResponse{}, err
	}

	page := query.Page()
	views, total, err := h.orders.FindByUser(ctx, query.Identity().UserID(), page)
	if err != nil {
		return GetUserOrdersQueryResponse{}, errs.AsInternal("failed to list orders", err)
	}

	return GetUserOrdersQueryResponse{
		Orders: views,
		Pagination: Pagination{
			Page:  page.Number(),
			Limit: page.Limit(),
			Total: total,
			Pages: page.TotalPages(total),
		},
	}, nil
}
