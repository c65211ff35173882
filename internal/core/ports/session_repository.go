package ports

import (
	"context"
	"time"

	"swiftdrop/internal/core/domain/model/session"

	"github.com/google/uuid"
)

// SessionRepository defines the persistence contract for refresh sessions.
type SessionRepository interface {
	Add(ctx context.Context, aggregate *session.Session) error
	Get(ctx context.Context, id uuid.UUID) (*session.Session, error)

	// Update stores the revocation of a session. It returns
	// session.ErrSessionIsNotActive when the stored session was already
	// revoked, including by a concurrent transaction.
	Update(ctx context.Context, aggregate *session.Session) error

	// DeleteInactive removes sessions that expired or were revoked before now
	// and returns how many were removed.
	DeleteInactive(ctx context.Context, now time.Time) (int64, error)
}
