package commands

import (
	"errors"
	"strings"

	"swiftdrop/internal/pkg/guard"
)

var ErrRefreshSessionCommandIsNotConstructed = errors.New(
	"RefreshSessionCommand must be created via NewRefreshSessionCommand constructor",
)

// RefreshSessionCommand exchanges a refresh token for a new token pair.
type RefreshSessionCommand struct { //nolint:recvcheck //using for validation
	refreshToken string

	guard guard.ConstructorGuard
}

func NewRefreshSessionCommand(refreshToken string) (RefreshSessionCommand, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if err := requiredString("refresh token", refreshToken); err != nil {
		return RefreshSessionCommand{}, err
	}

	return RefreshSessionCommand{
		refreshToken: refreshToken,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c RefreshSessionCommand) Validate() error {
	return c.guard.Validate(ErrRefreshSessionCommandIsNotConstructed)
}

func (c RefreshSessionCommand) RefreshToken() string {
	return c.refreshToken
}
