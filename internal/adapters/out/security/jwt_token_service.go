package security

import (
	"errors"
	"fmt"
	"time"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/user"
	"swiftdrop/internal/core/ports"
	"swiftdrop/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	DefaultAccessTokenTTL  = 15 * time.Minute
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour

	issuer = "swiftdrop"
)

var (
	ErrInvalidToken      = errs.NewUnauthorizedError("invalid or expired token")
	ErrSecretIsMissing   = errors.New("access and refresh token secrets are required")
	ErrSecretsMustDiffer = errors.New("access and refresh token secrets must differ")
)

// TokenConfig holds the signing keys and lifetimes. The access and refresh
// secrets must differ so one token kind cannot be replayed as the other.
type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

type accessClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type refreshClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// JWTTokenService implements ports.TokenService with HS256 tokens.
type JWTTokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewJWTTokenService(cfg TokenConfig) (*JWTTokenService, error) {
	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		return nil, ErrSecretIsMissing
	}
	if cfg.AccessSecret == cfg.RefreshSecret {
		return nil, ErrSecretsMustDiffer
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = DefaultAccessTokenTTL
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = DefaultRefreshTokenTTL
	}

	return &JWTTokenService{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
		now:           time.Now,
	}, nil
}

// IssuePair signs an access token for subject and a refresh token whose jti
// is sessionID.
func (s *JWTTokenService) IssuePair(subject *user.User, sessionID uuid.UUID, now time.Time) (ports.TokenPair, error) {
	if err := subject.Validate(); err != nil {
		return ports.TokenPair{}, err
	}
	if sessionID == uuid.Nil {
		return ports.TokenPair{}, errs.NewValueIsRequiredError("session id")
	}

	accessExpiresAt := now.Add(s.accessTTL)
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		UserID: subject.ID().String(),
		Email:  subject.Email(),
		Role:   subject.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(accessExpiresAt),
		},
	}).SignedString(s.accessSecret)
	if err != nil {
		return ports.TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}

	refreshExpiresAt := now.Add(s.refreshTTL)
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims{
		UserID: subject.ID().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID.String(),
			Issuer:    issuer,
			Subject:   subject.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(refreshExpiresAt),
		},
	}).SignedString(s.refreshSecret)
	if err != nil {
		return ports.TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}

	return ports.TokenPair{
		AccessToken:      access,
		AccessExpiresAt:  accessExpiresAt,
		RefreshToken:     refresh,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}

func (s *JWTTokenService) VerifyAccess(token string) (ports.AccessClaims, error) {
	var claims accessClaims
	if err := s.parse(token, &claims, s.accessSecret); err != nil {
		return ports.AccessClaims{}, err
	}

	userID, err := kernel.IDFromString(claims.UserID)
	if err != nil {
		return ports.AccessClaims{}, errs.NewUnauthorizedErrorWithCause(ErrInvalidToken.Reason, err)
	}
	role, err := user.ParseRole(claims.Role)
	if err != nil {
		return ports.AccessClaims{}, errs.NewUnauthorizedErrorWithCause(ErrInvalidToken.Reason, err)
	}

	return ports.AccessClaims{
		UserID: userID,
		Email:  claims.Email,
		Role:   role,
	}, nil
}

func (s *JWTTokenService) VerifyRefresh(token string) (ports.RefreshClaims, error) {
	var claims refreshClaims
	if err := s.parse(token, &claims, s.refreshSecret); err != nil {
		return ports.RefreshClaims{}, err
	}

	userID, err := kernel.IDFromString(claims.UserID)
	if err != nil {
		return ports.RefreshClaims{}, errs.NewUnauthorizedErrorWithCause(ErrInvalidToken.Reason, err)
	}
	sessionID, err := uuid.Parse(claims.ID)
	if err != nil {
		return ports.RefreshClaims{}, errs.NewUnauthorizedErrorWithCause(ErrInvalidToken.Reason, err)
	}

	return ports.RefreshClaims{
		UserID:    userID,
		SessionID: sessionID,
	}, nil
}

func (s *JWTTokenService) parse(token string, claims jwt.Claims, secret []byte) error {
	if token == "" {
		return ErrInvalidToken
	}

	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return errs.NewUnauthorizedErrorWithCause(ErrInvalidToken.Reason, err)
	}
	if !parsed.Valid {
		return ErrInvalidToken
	}

	return nil
}
