package queries

import (
	"context"
	"errors"

	"swiftdrop/internal/core/domain/model/address"
	"swiftdrop/internal/core/domain/model/user"
	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/guard"
)

var ErrListAddressesQueryIsNotConstructed = errors.New(
	"ListAddressesQuery must be created via NewListAddressesQuery constructor",
)

type ListAddressesQuery struct {
	identity user.Identity
	guard    guard.ConstructorGuard
}

func NewListAddressesQuery(identity user.Identity) (ListAddressesQuery, error) {
	if err := identity.Validate(); err != nil {
		return ListAddressesQuery{}, err
	}
	return ListAddressesQuery{identity: identity, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAddressesQuery) Validate() error {
	return q.guard.Validate(ErrListAddressesQueryIsNotConstructed)
}

func (q ListAddressesQuery) Identity() user.Identity {
	return q.identity
}

// ListAddressesQueryHandler returns the caller's address book, newest first.
type ListAddressesQueryHandler struct {
	addresses AddressReader
}

func NewListAddressesQueryHandler(addresses AddressReader) ListAddressesQueryHandler {
	return ListAddressesQueryHandler{addresses: addresses}
}

func (h ListAddressesQueryHandler) Handle(ctx context.Context, query ListAddressesQuery) ([]*address.Address, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	list, err := h.addresses.ListByUser(ctx, query.Identity().UserID())
	if err != nil {
		return nil, errs.AsInternal("failed to list addresses", err)
	}
	return list, nil
}
