package commands

import (
	"errors"
	"strings"

	"swiftdrop/internal/pkg/guard"
)

var ErrLogoutUserCommandIsNotConstructed = errors.New(
	"LogoutUserCommand must be created via NewLogoutUserCommand constructor",
)

// LogoutUserCommand revokes the session behind a refresh token. An empty token
// is allowed: there is nothing to revoke and logout still succeeds.
type LogoutUserCommand struct { //nolint:recvcheck //using for validation
	refreshToken string

	guard guard.ConstructorGuard
}

func NewLogoutUserCommand(refreshToken string) LogoutUserCommand {
	return LogoutUserCommand{
		refreshToken: strings.TrimSpace(refreshToken),
		guard:        guard.NewConstructorGuard(),
	}
}

func (c LogoutUserCommand) Validate() error {
	return c.guard.Validate(ErrLogoutUserCommandIsNotConstructed)
}

func (c LogoutUserCommand) RefreshToken() string {
	return c.refreshToken
}
