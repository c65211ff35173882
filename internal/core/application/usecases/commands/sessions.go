package commands

import (
	"context"
	"time"

	"swiftdrop/internal/core/domain/model/session"
	"swiftdrop/internal/core/domain/model/user"
	"swiftdrop/internal/core/ports"

	"github.com/google/uuid"
)

// AuthResult is an authenticated account with a fresh token pair.
type AuthResult struct {
	User   *user.User
	Tokens ports.TokenPair
}

// openSession issues a token pair for u and stores the refresh session under
// the refresh token's jti.
func openSession(
	ctx context.Context,
	sessions ports.SessionRepository,
	tokens ports.TokenService,
	u *user.User,
	now time.Time,
) (ports.TokenPair, error) {
	sessionID := uuid.New()

	pair, err := tokens.IssuePair(u, sessionID, now)
	if err != nil {
		return ports.TokenPair{}, err
	}

	s, err := session.NewSession(sessionID, u.ID(), pair.RefreshExpiresAt, now)
	if err != nil {
		return ports.TokenPair{}, err
	}

	if err = sessions.Add(ctx, s); err != nil {
		return ports.TokenPair{}, err
	}

	return pair, nil
}
