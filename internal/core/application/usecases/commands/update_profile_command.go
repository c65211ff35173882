package commands

import (
	"errors"

	"swiftdrop/internal/core/domain/model/user"
	"swiftdrop/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand carries the profile fields a user wants to change.
// Nil fields are left as they are.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	identity user.Identity
	name     *string
	phone    *string

	guard guard.ConstructorGuard
}

func NewUpdateProfileCommand(identity user.Identity, name, phone *string) (UpdateProfileCommand, error) {
	if err := identity.Validate(); err != nil {
		return UpdateProfileCommand{}, err
	}

	return UpdateProfileCommand{
		identity: identity,
		name:     name,
		phone:    phone,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

func (c UpdateProfileCommand) Identity() user.Identity {
	return c.identity
}

func (c UpdateProfileCommand) Name() *string {
	return c.name
}

func (c UpdateProfileCommand) Phone() *string {
	return c.phone
}
