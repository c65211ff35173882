package commands

import (
	"context"

	"go.uber.org/zap"
)

// CancelOrderPlaceholder is returned by CancelOrderCommandHandler until
// cancellation rules exist.
const CancelOrderPlaceholder = "Order cancellation feature coming soon"

// CancelOrderCommandHandler accepts cancellation requests without acting on
// them. Whether cancellation changes the order status and appends a tracking
// entry is still undecided, so nothing is read or written.
type CancelOrderCommandHandler struct {
	logger *zap.Logger
}

func NewCancelOrderCommandHandler(logger *zap.Logger) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		logger: logger.With(zap.String("component", "cancel-order")),
	}
}

// Handle returns the placeholder message.
func (h CancelOrderCommandHandler) Handle(_ context.Context, cmd CancelOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	h.logger.Info("order cancellation requested",
		zap.String("order_id", cmd.OrderID().String()),
		zap.String("user_id", cmd.Identity().UserID().String()))

	return CancelOrderPlaceholder, nil
}
