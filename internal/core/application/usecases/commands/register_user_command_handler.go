package commands

import (
	"context"
	"errors"
	"time"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/user"
	"swiftdrop/internal/core/ports"
	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/metrics"

	"go.uber.org/zap"
)

// RegisterUserCommandHandler creates an account with role USER and signs it in.
type RegisterUserCommandHandler struct {
	uowFactory AuthUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenService
	logger     *zap.Logger
	now        func() time.Time
}

func NewRegisterUserCommandHandler(
	uowFactory AuthUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	logger *zap.Logger,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
		logger:     logger.With(zap.String("component", "register-user")),
		now:        time.Now,
	}
}

// Handle returns errs.ObjectAlreadyExistsError when the email is taken.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (AuthResult, error) {
	if err := cmd.Validate(); err != nil {
		return AuthResult{}, err
	}

	result, err := h.register(ctx, cmd)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("register_user").Inc()
		return AuthResult{}, errs.AsInternal("failed to register user", err)
	}

	metrics.UsersRegisteredTotal.Inc()
	h.logger.Info("user registered", zap.String("user_id", result.User.ID().String()))
	return result, nil
}

func (h RegisterUserCommandHandler) register(ctx context.Context, cmd RegisterUserCommand) (AuthResult, error) {
	now := h.now()

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return AuthResult{}, err
	}

	account, err := user.NewUser(kernel.NewID(), cmd.Name(), cmd.Email(), hash, cmd.Phone(), now)
	if err != nil {
		return AuthResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return AuthResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	_, err = users.GetByEmail(ctx, account.Email())
	switch {
	case err == nil:
		return AuthResult{}, errs.NewObjectAlreadyExistsError("email", account.Email())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return AuthResult{}, err
	}

	if err = users.Add(ctx, account); err != nil {
		return AuthResult{}, err
	}

	pair, err := openSession(ctx, uow.SessionRepository(), h.tokens, account, now)
	if err != nil {
		return AuthResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AuthResult{}, err
	}

	return AuthResult{User: account, Tokens: pair}, nil
}
