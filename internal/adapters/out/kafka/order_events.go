package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"swiftdrop/internal/core/domain/model/order"
)

// OrderPlacedEvent is the JSON value of an order.placed message.
type OrderPlacedEvent struct {
	OrderID     string    `json:"orderId"`
	UserID      string    `json:"userId"`
	TotalAmount string    `json:"totalAmount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// OrderEventPublisher implements ports.OrderEventPublisher. Messages are keyed
// by order id.
type OrderEventPublisher struct {
	producer Producer
	topic    string
}

func NewOrderEventPublisher(producer Producer, topic string) *OrderEventPublisher {
	return &OrderEventPublisher{
		producer: producer,
		topic:    topic,
	}
}

func (p *OrderEventPublisher) PublishOrderPlaced(ctx context.Context, placed *order.Order) error {
	if err := placed.Validate(); err != nil {
		return err
	}

	value, err := json.Marshal(OrderPlacedEvent{
		OrderID:     placed.ID().String(),
		UserID:      placed.UserID().String(),
		TotalAmount: placed.Charges().TotalAmount().StringFixed(order.CurrencyPlaces),
		Status:      placed.Status().String(),
		CreatedAt:   placed.CreatedAt(),
	})
	if err != nil {
		return fmt.Errorf("marshal order placed event: %w", err)
	}

	if err := p.producer.SendMessage(ctx, p.topic, []byte(placed.ID().String()), value); err != nil {
		return fmt.Errorf("send order placed event: %w", err)
	}

	return nil
}
