package queries

import (
	"errors"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/user"
	"swiftdrop/internal/core/ports"
	"swiftdrop/internal/pkg/guard"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// GetUserOrdersQuery lists one page of the caller's orders.
// page must be at least 1 and limit between kernel.MinLimit and kernel.MaxLimit.
type GetUserOrdersQuery struct {
	identity user.Identity
	page     kernel.Page

	guard guard.ConstructorGuard
}

func NewGetUserOrdersQuery(identity user.Identity, page, limit int) (GetUserOrdersQuery, error) {
	if err := identity.Validate(); err != nil {
		return GetUserOrdersQuery{}, err
	}

	p, err := kernel.NewPage(page, limit)
	if err != nil {
		return GetUserOrdersQuery{}, err
	}

	return GetUserOrdersQuery{
		identity: identity,
		page:     p,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

func (q GetUserOrdersQuery) Identity() user.Identity {
	return q.identity
}

func (q GetUserOrdersQuery) Page() kernel.Page {
	return q.page
}

// Pagination describes the window returned with a page of orders.
type Pagination struct {
	Page  int
	Limit int
	Total int64
	Pages int64
}

type GetUserOrdersQueryResponse struct {
	Orders     []ports.OrderView
	Pagination Pagination
}
