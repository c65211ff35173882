package commands

import (
	"errors"

	"swiftdrop/internal/core/domain/model/address"
	"swiftdrop/internal/core/domain/model/user"
	"swiftdrop/internal/pkg/guard"
)

var ErrCreateAddressCommandIsNotConstructed = errors.New(
	"CreateAddressCommand must be created via NewCreateAddressCommand constructor",
)

// CreateAddressCommand adds an address to the caller's address book.
// Field rules are enforced by address.NewAddress.
type CreateAddressCommand struct { //nolint:recvcheck //using for validation
	identity user.Identity
	fields   address.Fields

	guard guard.ConstructorGuard
}

func NewCreateAddressCommand(identity user.Identity, fields address.Fields) (CreateAddressCommand, error) {
	if err := identity.Validate(); err != nil {
		return CreateAddressCommand{}, err
	}

	return CreateAddressCommand{
		identity: identity,
		fields:   fields,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateAddressCommand) Validate() error {
	return c.guard.Validate(ErrCreateAddressCommandIsNotConstructed)
}

func (c CreateAddressCommand) Identity() user.Identity {
	return c.identity
}

func (c CreateAddressCommand) Fields() address.Fields {
	return c.fields
}
