package ports

import (
	"time"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// PasswordHasher hashes and checks account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}

// TokenPair is a freshly issued access and refresh token.
type TokenPair struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// AccessClaims are the verified contents of an access token.
type AccessClaims struct {
	UserID kernel.ID
	Email  string
	Role   user.Role
}

// RefreshClaims are the verified contents of a refresh token.
type RefreshClaims struct {
	UserID    kernel.ID
	SessionID uuid.UUID
}

// TokenService issues and verifies signed tokens. Verification failures are
// reported as errs.UnauthorizedError.
type TokenService interface {
	IssuePair(subject *user.User, sessionID uuid.UUID, now time.Time) (TokenPair, error)
	VerifyAccess(token string) (AccessClaims, error)
	VerifyRefresh(token string) (RefreshClaims, error)
}
