package commands

import (
	"context"
	"errors"
	"time"

	"swiftdrop/internal/core/ports"
	"swiftdrop/internal/pkg/errs"

	"go.uber.org/zap"
)

// ErrInvalidCredentials is returned for an unknown email and for a wrong
// password alike.
var ErrInvalidCredentials = errs.NewUnauthorizedError("invalid email or password")

// LoginUserCommandHandler checks credentials and opens a new session.
type LoginUserCommandHandler struct {
	uowFactory AuthUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenService
	logger     *zap.Logger
	now        func() time.Time
}

func NewLoginUserCommandHandler(
	uowFactory AuthUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	logger *zap.Logger,
) LoginUserCommandHandler {
	return LoginUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
		logger:     logger.With(zap.String("component", "login-user")),
		now:        time.Now,
	}
}

func (h LoginUserCommandHandler) Handle(ctx context.Context, cmd LoginUserCommand) (AuthResult, error) {
	if err := cmd.Validate(); err != nil {
		return AuthResult{}, err
	}

	result, err := h.login(ctx, cmd)
	if err != nil {
		return AuthResult{}, errs.AsInternal("failed to log in", err)
	}

	h.logger.Debug("user logged in", zap.String("user_id", result.User.ID().String()))
	return result, nil
}

func (h LoginUserCommandHandler) login(ctx context.Context, cmd LoginUserCommand) (AuthResult, error) {
	uow := h.uowFactory.Create()

	account, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}

	if err = h.hasher.Compare(account.PasswordHash(), cmd.Password()); err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	if err = uow.Begin(ctx); err != nil {
		return AuthResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pair, err := openSession(ctx, uow.SessionRepository(), h.tokens, account, h.now())
	if err != nil {
		return AuthResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AuthResult{}, err
	}

	return AuthResult{User: account, Tokens: pair}, nil
}
