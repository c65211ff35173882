package commands

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"swiftdrop/internal/core/domain/model/user"
	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/guard"
)

const (
	MinPasswordLength = 6
	// MaxPasswordLength is the bcrypt input limit.
	MaxPasswordLength = 72
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a sign-up request.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	password string
	phone    string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand requires name, email and password. The email is
// normalized; account-level rules are checked again by user.NewUser.
func NewRegisterUserCommand(name, email, password, phone string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		name:  strings.TrimSpace(name),
		email: user.NormalizeEmail(email),
		phone: strings.TrimSpace(phone),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requiredString("name", cmd.name),
		requiredString("email", cmd.email),
		cmd.setPassword(password),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Name() string {
	return c.name
}

func (c RegisterUserCommand) Email() string {
	return c.email
}

func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c RegisterUserCommand) Phone() string {
	return c.phone
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if n := utf8.RuneCountInString(password); n < MinPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause("password is too short",
			fmt.Errorf("password must be at least %d characters", MinPasswordLength))
	}
	if len(password) > MaxPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause("password is too long",
			fmt.Errorf("password cannot exceed %d bytes", MaxPasswordLength))
	}
	c.password = password
	return nil
}
