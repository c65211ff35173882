package commands

import (
	"context"
	"time"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/order"
	"swiftdrop/internal/core/domain/services"
	"swiftdrop/internal/core/ports"
	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/metrics"

	"go.uber.org/zap"
)

// PlaceOrderCommandHandler runs the order placement workflow:
// address validation, pricing, then the order and its first tracking entry
// written in one transaction. Errors that are not domain errors are returned
// as errs.InternalError.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, distanceProvider,
//	    services.NewPricingCalculator(time.Now), publisher, logger)
//	view, err := handler.Handle(ctx, cmd)
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	distance   services.DistanceProvider
	pricing    services.PricingCalculator
	publisher  ports.OrderEventPublisher
	logger     *zap.Logger
	now        func() time.Time
}

func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	distance services.DistanceProvider,
	pricing services.PricingCalculator,
	publisher ports.OrderEventPublisher,
	logger *zap.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		distance:   distance,
		pricing:    pricing,
		publisher:  publisher,
		logger:     logger.With(zap.String("component", "place-order")),
		now:        time.Now,
	}
}

// Handle places the order and returns it joined with its addresses and owner.
// The order.placed event is published after commit; a failed publish is logged
// and does not fail the placement.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (ports.OrderView, error) {
	if err := cmd.Validate(); err != nil {
		return ports.OrderView{}, err
	}

	view, err := h.place(ctx, cmd)
	if err != nil {
		if !errs.IsDomain(err) {
			h.logger.Error("order placement failed",
				zap.String("user_id", cmd.Identity().UserID().String()), zap.Error(err))
		}
		metrics.OperationErrorsTotal.WithLabelValues("place_order").Inc()
		return ports.OrderView{}, errs.AsInternal("failed to place order", err)
	}

	metrics.OrdersPlacedTotal.Inc()
	h.logger.Info("order placed",
		zap.String("order_id", view.Order.ID().String()),
		zap.String("user_id", view.Order.UserID().String()),
		zap.String("total", view.Order.Charges().TotalAmount().StringFixed(order.CurrencyPlaces)))

	if err = h.publisher.PublishOrderPlaced(ctx, view.Order); err != nil {
		metrics.EventPublishErrorsTotal.WithLabelValues("order.placed").Inc()
		h.logger.Warn("failed to publish order placed event",
			zap.String("order_id", view.Order.ID().String()), zap.Error(err))
	}

	return view, nil
}

func (h PlaceOrderCommandHandler) place(ctx context.Context, cmd PlaceOrderCommand) (ports.OrderView, error) {
	userID := cmd.Identity().UserID()
	uow := h.uowFactory.Create()

	// Reads run on the shared pool before the transaction starts.
	pickup, delivery, err := NewAddressValidator(uow.AddressRepository()).
		Validate(ctx, userID, cmd.PickupAddressID(), cmd.DeliveryAddressID())
	if err != nil {
		return ports.OrderView{}, err
	}

	charges, err := h.pricing.Calculate(h.distance.DistanceKm(pickup, delivery), cmd.Details().EstimatedValue)
	if err != nil {
		return ports.OrderView{}, err
	}

	placed, err := order.PlaceOrder(kernel.NewID(), userID, pickup.ID(), delivery.ID(),
		cmd.Details(), charges, h.now())
	if err != nil {
		return ports.OrderView{}, err
	}

	if err = uow.Begin(ctx); err != nil {
		return ports.OrderView{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, placed); err != nil {
		return ports.OrderView{}, err
	}

	view, err := orderRepo.FindByID(ctx, placed.ID(), &userID)
	if err != nil {
		return ports.OrderView{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.OrderView{}, err
	}

	return view, nil
}
