package user

import (
	"errors"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/guard"
)

var ErrIdentityIsNotConstructed = errors.New("Identity must be created via NewIdentity constructor")

// Identity is the verified acting user of a request. It is produced by the
// authentication layer after token verification and passed explicitly into
// commands and queries.
type Identity struct {
	userID kernel.ID
	role   Role
	guard  guard.ConstructorGuard
}

func NewIdentity(userID kernel.ID, role Role) (Identity, error) {
	if err := errors.Join(userID.Validate(), role.Validate()); err != nil {
		return Identity{}, err
	}

	return Identity{
		userID: userID,
		role:   role,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (i Identity) Validate() error {
	return i.guard.Validate(ErrIdentityIsNotConstructed)
}

func (i Identity) UserID() kernel.ID {
	return i.userID
}

func (i Identity) Role() Role {
	return i.role
}
