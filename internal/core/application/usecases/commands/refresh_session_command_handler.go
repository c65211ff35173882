package commands

import (
	"context"
	"errors"
	"time"

	"swiftdrop/internal/core/domain/model/session"
	"swiftdrop/internal/core/ports"
	"swiftdrop/internal/pkg/errs"

	"go.uber.org/zap"
)

var ErrSessionNotFound = errs.NewUnauthorizedError("session not found")

// RefreshSessionCommandHandler rotates refresh tokens: the presented session
// is revoked and a new one is opened in the same transaction.
type RefreshSessionCommandHandler struct {
	uowFactory AuthUoWFactory
	tokens     ports.TokenService
	logger     *zap.Logger
	now        func() time.Time
}

func NewRefreshSessionCommandHandler(
	uowFactory AuthUoWFactory,
	tokens ports.TokenService,
	logger *zap.Logger,
) RefreshSessionCommandHandler {
	return RefreshSessionCommandHandler{
		uowFactory: uowFactory,
		tokens:     tokens,
		logger:     logger.With(zap.String("component", "refresh-session")),
		now:        time.Now,
	}
}

// Handle returns errs.UnauthorizedError when the token is invalid or its
// session is unknown, revoked or expired.
func (h RefreshSessionCommandHandler) Handle(ctx context.Context, cmd RefreshSessionCommand) (AuthResult, error) {
	if err := cmd.Validate(); err != nil {
		return AuthResult{}, err
	}

	claims, err := h.tokens.VerifyRefresh(cmd.RefreshToken())
	if err != nil {
		return AuthResult{}, errs.AsInternal("failed to verify refresh token", err)
	}

	result, err := h.rotate(ctx, claims)
	if err != nil {
		return AuthResult{}, errs.AsInternal("failed to refresh session", err)
	}

	return result, nil
}

func (h RefreshSessionCommandHandler) rotate(ctx context.Context, claims ports.RefreshClaims) (AuthResult, error) {
	now := h.now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AuthResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessions := uow.SessionRepository()
	current, err := sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return AuthResult{}, ErrSessionNotFound
		}
		return AuthResult{}, err
	}
	if !current.UserID().IsEqual(claims.UserID) {
		return AuthResult{}, ErrSessionNotFound
	}
	if !current.IsActive(now) {
		h.logger.Info("inactive session presented",
			zap.String("session_id", current.ID().String()),
			zap.String("user_id", current.UserID().String()))
		return AuthResult{}, session.ErrSessionIsNotActive
	}

	account, err := uow.UserRepository().Get(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return AuthResult{}, ErrSessionNotFound
		}
		return AuthResult{}, err
	}

	current.Revoke(now)
	if err = sessions.Update(ctx, current); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return AuthResult{}, ErrSessionNotFound
		}
		if errors.Is(err, session.ErrSessionIsNotActive) {
			h.logger.Warn("session rotated concurrently",
				zap.String("session_id", current.ID().String()),
				zap.String("user_id", current.UserID().String()))
		}
		return AuthResult{}, err
	}

	pair, err := openSession(ctx, sessions, h.tokens, account, now)
	if err != nil {
		return AuthResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AuthResult{}, err
	}

	return AuthResult{User: account, Tokens: pair}, nil
}
