package ports

import (
	"context"

	"swiftdrop/internal/core/domain/model/order"
)

// OrderEventPublisher announces committed order changes to other services.
type OrderEventPublisher interface {
	PublishOrderPlaced(ctx context.Context, placed *order.Order) error
}
