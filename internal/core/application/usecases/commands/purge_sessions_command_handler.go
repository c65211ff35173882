package commands

import (
	"context"

	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/metrics"

	"go.uber.org/zap"
)

// PurgeSessionsCommandHandler deletes inactive refresh sessions in bulk.
// Active sessions are never touched.
type PurgeSessionsCommandHandler struct {
	uowFactory AuthUoWFactory
	logger     *zap.Logger
}

func NewPurgeSessionsCommandHandler(uowFactory AuthUoWFactory, logger *zap.Logger) PurgeSessionsCommandHandler {
	return PurgeSessionsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With(zap.String("component", "purge-sessions")),
	}
}

// Handle returns the number of deleted sessions.
func (h PurgeSessionsCommandHandler) Handle(ctx context.Context, cmd PurgeSessionsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	deleted, err := h.uowFactory.Create().SessionRepository().DeleteInactive(ctx, cmd.Now())
	if err != nil {
		return 0, errs.AsInternal("failed to purge sessions", err)
	}

	metrics.SessionsPurgedTotal.Add(float64(deleted))
	if deleted > 0 {
		h.logger.Info("inactive sessions purged", zap.Int64("deleted", deleted))
	}

	return deleted, nil
}
