package queries

import (
	"context"
	"errors"

	"swiftdrop/internal/core/domain/model/user"
	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/guard"
)

var ErrGetProfileQueryIsNotConstructed = errors.New(
	"GetProfileQuery must be created via NewGetProfileQuery constructor",
)

type GetProfileQuery struct {
	identity user.Identity
	guard    guard.ConstructorGuard
}

func NewGetProfileQuery(identity user.Identity) (GetProfileQuery, error) {
	if err := identity.Validate(); err != nil {
		return GetProfileQuery{}, err
	}
	return GetProfileQuery{identity: identity, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

func (q GetProfileQuery) Identity() user.Identity {
	return q.identity
}

// GetProfileQueryHandler returns the caller's account. Callers must not expose
// the password hash.
type GetProfileQueryHandler struct {
	users UserReader
}

func NewGetProfileQueryHandler(users UserReader) GetProfileQueryHandler {
	return GetProfileQueryHandler{users: users}
}

func (h GetProfileQueryHandler) Handle(ctx context.Context, query GetProfileQuery) (*user.User, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	account, err := h.users.Get(ctx, query.Identity().UserID())
	if err != nil {
		return nil, errs.AsInternal("failed to get profile", err)
	}
	return account, nil
}
