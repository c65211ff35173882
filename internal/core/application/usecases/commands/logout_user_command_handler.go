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

// LogoutUserCommandHandler revokes a refresh session. It is idempotent: unknown,
// invalid or already revoked tokens are not an error.
type LogoutUserCommandHandler struct {
	uowFactory AuthUoWFactory
	tokens     ports.TokenService
	logger     *zap.Logger
	now        func() time.Time
}

func NewLogoutUserCommandHandler(
	uowFactory AuthUoWFactory,
	tokens ports.TokenService,
	logger *zap.Logger,
) LogoutUserCommandHandler {
	return LogoutUserCommandHandler{
		uowFactory: uowFactory,
		tokens:     tokens,
		logger:     logger.With(zap.String("component", "logout-user")),
		now:        time.Now,
	}
}

func (h LogoutUserCommandHandler) Handle(ctx context.Context, cmd LogoutUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if cmd.RefreshToken() == "" {
		return nil
	}

	claims, err := h.tokens.VerifyRefresh(cmd.RefreshToken())
	if err != nil {
		h.logger.Debug("logout with unusable refresh token", zap.Error(err))
		return nil
	}

	return errs.AsInternal("failed to log out", h.revoke(ctx, claims))
}

func (h LogoutUserCommandHandler) revoke(ctx context.Context, claims ports.RefreshClaims) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessions := uow.SessionRepository()
	current, err := sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}
	if current.RevokedAt() != nil {
		return nil
	}

	current.Revoke(h.now())
	if err = sessions.Update(ctx, current); err != nil {
		if errors.Is(err, session.ErrSessionIsNotActive) || errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	return uow.Commit(ctx)
}
