package commands

import (
	"errors"

	"swiftdrop/internal/core/domain/model/user"
	"swiftdrop/internal/pkg/guard"
)

var ErrLoginUserCommandIsNotConstructed = errors.New(
	"LoginUserCommand must be created via NewLoginUserCommand constructor",
)

// LoginUserCommand represents a sign-in with email and password.
type LoginUserCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewLoginUserCommand(email, password string) (LoginUserCommand, error) {
	cmd := LoginUserCommand{
		email:    user.NormalizeEmail(email),
		password: password,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requiredString("email", cmd.email),
		requiredString("password", cmd.password),
	); err != nil {
		return LoginUserCommand{}, err
	}

	return cmd, nil
}

func (c LoginUserCommand) Validate() error {
	return c.guard.Validate(ErrLoginUserCommandIsNotConstructed)
}

func (c LoginUserCommand) Email() string {
	return c.email
}

func (c LoginUserCommand) Password() string {
	return c.password
}
