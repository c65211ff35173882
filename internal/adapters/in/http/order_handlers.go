package http

import (
	"net/http"

	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/application/usecases/queries"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/order"
	"swiftdrop/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// PlaceOrder handles POST /api/v1/orders - places an order for the caller.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	identity, err := identityFrom(ctx)
	if err != nil {
		return err
	}

	var req servers.PlaceOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(err)
	}

	details := order.Details{
		ItemDescription:     req.ItemDescription,
		ItemImage:           req.ItemImage,
		SpecialInstructions: req.SpecialInstructions,
		EstimatedValue:      req.EstimatedValue,
		ScheduledPickup:     req.ScheduledPickup,
	}

	cmd, err := commands.NewPlaceOrderCommand(identity, req.PickupAddressId, req.DeliveryAddressId, details)
	if err != nil {
		return err
	}

	view, err := s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.OrderResponse{
		Success: true,
		Message: "Order placed successfully",
		Data:    toOrder(view),
	})
}

// ListOrders handles GET /api/v1/orders - one page of the caller's orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	identity, err := identityFrom(ctx)
	if err != nil {
		return err
	}

	page, limit := kernel.DefaultPage, kernel.DefaultLimit
	if params.Page != nil {
		page = *params.Page
	}
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetUserOrdersQuery(identity, page, limit)
	if err != nil {
		return err
	}

	result, err := s.handlers.GetUserOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.OrderListResponse{
		Success:    true,
		Message:    "Orders retrieved successfully",
		Data:       toOrders(result.Orders),
		Pagination: toPagination(result.Pagination),
	})
}

// GetOrder handles GET /api/v1/orders/{orderId}. Orders of other users are
// reported as not found.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	identity, err := identityFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(identity, orderID)
	if err != nil {
		return err
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.OrderResponse{
		Success: true,
		Message: "Order retrieved successfully",
		Data:    toOrder(view),
	})
}

// CancelOrder handles PUT /api/v1/orders/{orderId}/cancel. The order is not
// changed yet.
func (s *Server) CancelOrder(ctx echo.Context, orderID servers.OrderId) error {
	identity, err := identityFrom(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(identity, orderID)
	if err != nil {
		return err
	}

	message, err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.MessageResponse{
		Success: true,
		Message: message,
	})
}
