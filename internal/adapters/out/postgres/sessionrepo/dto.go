// Package sessionrepo persists refresh-token sessions with GORM.
package sessionrepo

import (
	"time"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/session"

	"github.com/google/uuid"
)

type SessionDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"type:varchar(25);not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	RevokedAt *time.Time
	CreatedAt time.Time
}

func (SessionDTO) TableName() string {
	return "sessions"
}

func fromDomain(s *session.Session) SessionDTO {
	return SessionDTO{
		ID:        s.ID(),
		UserID:    s.UserID().String(),
		ExpiresAt: s.ExpiresAt(),
		RevokedAt: s.RevokedAt(),
		CreatedAt: s.CreatedAt(),
	}
}

func toDomain(dto SessionDTO) (*session.Session, error) {
	userID, err := kernel.IDFromString(dto.UserID)
	if err != nil {
		return nil, err
	}

	return session.RestoreSession(dto.ID, userID, dto.ExpiresAt, dto.RevokedAt, dto.CreatedAt)
}
