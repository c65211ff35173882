package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"swiftdrop/internal/adapters/out/kafka"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) SendMessage(ctx context.Context, topic string, key, value []byte) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func (m *MockProducer) Close() error {
	return m.Called().Error(0)
}

func placedOrder(t *testing.T) *order.Order {
	t.Helper()

	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	charges, err := order.NewCharges(decimal.NewFromInt(5), decimal.NewFromFloat(30.86), decimal.NewFromFloat(35.86), now.Add(time.Hour))
	require.NoError(t, err)

	o, err := order.PlaceOrder(kernel.NewID(), kernel.NewID(), kernel.NewID(), kernel.NewID(),
		order.Details{ItemDescription: "Documents"}, charges, now)
	require.NoError(t, err)
	return o
}

func TestOrderEventPublisher_PublishOrderPlaced(t *testing.T) {
	ctx := t.Context()
	o := placedOrder(t)
	producer := new(MockProducer)

	var value []byte
	producer.On("SendMessage", ctx, "orders.placed", []byte(o.ID().String()), mock.Anything).
		Run(func(args mock.Arguments) { value = args.Get(3).([]byte) }).
		Return(nil).Once()

	err := kafka.NewOrderEventPublisher(producer, "orders.placed").PublishOrderPlaced(ctx, o)
	require.NoError(t, err)
	producer.AssertExpectations(t)

	var event kafka.OrderPlacedEvent
	require.NoError(t, json.Unmarshal(value, &event))
	assert.Equal(t, o.ID().String(), event.OrderID)
	assert.Equal(t, o.UserID().String(), event.UserID)
	assert.Equal(t, "35.86", event.TotalAmount)
	assert.Equal(t, "PENDING", event.Status)
	assert.True(t, o.CreatedAt().Equal(event.CreatedAt))
}

func TestOrderEventPublisher_ProducerFailure(t *testing.T) {
	producer := new(MockProducer)
	producer.On("SendMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("broker down")).Once()

	err := kafka.NewOrderEventPublisher(producer, "orders.placed").PublishOrderPlaced(t.Context(), placedOrder(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
}

func TestOrderEventPublisher_RejectsNotConstructedOrder(t *testing.T) {
	producer := new(MockProducer)

	err := kafka.NewOrderEventPublisher(producer, "orders.placed").PublishOrderPlaced(t.Context(), &order.Order{})
	require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	producer.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLogProducer_SendMessage(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	producer := kafka.NewLogProducer(zap.New(core))

	require.NoError(t, producer.SendMessage(t.Context(), "orders.placed", []byte("key"), []byte(`{"a":1}`)))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "orders.placed", entry.ContextMap()["topic"])
	assert.Equal(t, "kafka_log_producer", entry.ContextMap()["component"])

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	require.ErrorIs(t, producer.SendMessage(ctx, "orders.placed", nil, nil), context.Canceled)
	require.NoError(t, producer.Close())
}
