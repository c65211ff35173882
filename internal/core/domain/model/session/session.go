// Package session models refresh-token sessions. A session is created for
// every issued refresh token and identified by the token's jti claim.
package session

import (
	"errors"
	"fmt"
	"time"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession or RestoreSession constructor")
	ErrSessionIsNotActive      = errs.NewUnauthorizedError("session is expired or revoked")
)

// Session is a refresh-token session.
type Session struct {
	id        uuid.UUID
	userID    kernel.ID
	expiresAt time.Time
	revokedAt *time.Time
	createdAt time.Time

	isConstructed bool
}

// NewSession opens a session for userID that expires at expiresAt.
func NewSession(id uuid.UUID, userID kernel.ID, expiresAt, now time.Time) (*Session, error) {
	if !expiresAt.After(now) {
		return nil, errs.NewValueIsInvalidErrorWithCause("session expiry is invalid",
			fmt.Errorf("%s is not after %s", expiresAt.Format(time.RFC3339), now.Format(time.RFC3339)))
	}
	return build(id, userID, expiresAt.UTC(), nil, now.UTC())
}

// RestoreSession rebuilds a persisted session.
func RestoreSession(id uuid.UUID, userID kernel.ID, expiresAt time.Time, revokedAt *time.Time, createdAt time.Time) (*Session, error) {
	return build(id, userID, expiresAt, revokedAt, createdAt)
}

func build(id uuid.UUID, userID kernel.ID, expiresAt time.Time, revokedAt *time.Time, createdAt time.Time) (*Session, error) {
	if id == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("session id")
	}
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	return &Session{
		id:            id,
		userID:        userID,
		expiresAt:     expiresAt,
		revokedAt:     revokedAt,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) UserID() kernel.ID {
	return s.userID
}

func (s *Session) ExpiresAt() time.Time {
	return s.expiresAt
}

func (s *Session) RevokedAt() *time.Time {
	return s.revokedAt
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// IsActive reports whether the session is neither revoked nor expired at now.
func (s *Session) IsActive(now time.Time) bool {
	return s.revokedAt == nil && now.Before(s.expiresAt)
}

// Revoke marks the session revoked. Revoking twice keeps the first timestamp.
func (s *Session) Revoke(now time.Time) {
	if s.revokedAt != nil {
		return
	}
	at := now.UTC()
	s.revokedAt = &at
}
