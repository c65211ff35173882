package commands

import (
	"errors"
	"time"

	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/guard"
)

var ErrPurgeSessionsCommandIsNotConstructed = errors.New(
	"PurgeSessionsCommand must be created via NewPurgeSessionsCommand constructor",
)

// PurgeSessionsCommand removes sessions that expired or were revoked before Now.
type PurgeSessionsCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

func NewPurgeSessionsCommand(now time.Time) (PurgeSessionsCommand, error) {
	if now.IsZero() {
		return PurgeSessionsCommand{}, errs.NewValueIsRequiredError("now")
	}

	return PurgeSessionsCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c PurgeSessionsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeSessionsCommandIsNotConstructed)
}

func (c PurgeSessionsCommand) Now() time.Time {
	return c.now
}
