package commands

import (
	"context"

	"go.uber.org/zap"
)

const UpdateProfilePlaceholder = "Profile updated successfully"

// UpdateProfileCommandHandler accepts profile updates without persisting them.
// Profile editing rules have not been designed yet.
type UpdateProfileCommandHandler struct {
	logger *zap.Logger
}

func NewUpdateProfileCommandHandler(logger *zap.Logger) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{
		logger: logger.With(zap.String("component", "update-profile")),
	}
}

func (h UpdateProfileCommandHandler) Handle(_ context.Context, cmd UpdateProfileCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	h.logger.Info("profile update requested", zap.String("user_id", cmd.Identity().UserID().String()))
	return UpdateProfilePlaceholder, nil
}
