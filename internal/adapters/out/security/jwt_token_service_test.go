package security_test

import (
	"testing"
	"time"

	"swiftdrop/internal/adapters/out/security"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/user"
	"swiftdrop/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenService(t *testing.T) *security.JWTTokenService {
	t.Helper()

	svc, err := security.NewJWTTokenService(security.TokenConfig{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
	})
	require.NoError(t, err)
	return svc
}

func newSubject(t *testing.T) *user.User {
	t.Helper()

	u, err := user.NewUser(kernel.NewID(), "Jane Doe", "jane@example.com", "hash", "", time.Now())
	require.NoError(t, err)
	return u
}

func TestJWTTokenService_IssueAndVerify(t *testing.T) {
	svc := newTokenService(t)
	subject := newSubject(t)
	sessionID := uuid.New()
	now := time.Now()

	pair, err := svc.IssuePair(subject, sessionID, now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(security.DefaultAccessTokenTTL), pair.AccessExpiresAt)
	assert.Equal(t, now.Add(security.DefaultRefreshTokenTTL), pair.RefreshExpiresAt)

	access, err := svc.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, subject.ID(), access.UserID)
	assert.Equal(t, "jane@example.com", access.Email)
	assert.Equal(t, user.RoleUser, access.Role)

	refresh, err := svc.VerifyRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, subject.ID(), refresh.UserID)
	assert.Equal(t, sessionID, refresh.SessionID)
}

func TestJWTTokenService_TokenKindsAreNotInterchangeable(t *testing.T) {
	svc := newTokenService(t)
	pair, err := svc.IssuePair(newSubject(t), uuid.New(), time.Now())
	require.NoError(t, err)

	_, err = svc.VerifyRefresh(pair.AccessToken)
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	_, err = svc.VerifyAccess(pair.RefreshToken)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestJWTTokenService_RejectsExpiredTokens(t *testing.T) {
	svc := newTokenService(t)
	pair, err := svc.IssuePair(newSubject(t), uuid.New(), time.Now().Add(-8*24*time.Hour))
	require.NoError(t, err)

	_, err = svc.VerifyAccess(pair.AccessToken)
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	_, err = svc.VerifyRefresh(pair.RefreshToken)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestJWTTokenService_RejectsForeignOrMalformedTokens(t *testing.T) {
	svc := newTokenService(t)
	subject := newSubject(t)

	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    subject.ID().String(),
		"email": subject.Email(),
		"role":  "USER",
		"iss":   "swiftdrop",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("someone-else"))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":  subject.ID().String(),
		"iss": "swiftdrop",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.token"},
		{"wrong secret", foreign},
		{"alg none", unsigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.VerifyAccess(tt.token)
			require.ErrorIs(t, err, errs.ErrUnauthorized)
		})
	}
}

func TestJWTTokenService_IssuePair_RequiresSession(t *testing.T) {
	_, err := newTokenService(t).IssuePair(newSubject(t), uuid.Nil, time.Now())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewJWTTokenService_Secrets(t *testing.T) {
	_, err := security.NewJWTTokenService(security.TokenConfig{AccessSecret: "only-one"})
	require.ErrorIs(t, err, security.ErrSecretIsMissing)

	_, err = security.NewJWTTokenService(security.TokenConfig{AccessSecret: "same", RefreshSecret: "same"})
	require.ErrorIs(t, err, security.ErrSecretsMustDiffer)
}
