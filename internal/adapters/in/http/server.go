package http

import (
	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/application/usecases/queries"
	"swiftdrop/internal/generated/servers"
)

var _ servers.ServerInterface = (*Server)(nil)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	RegisterUser   commands.RegisterUserCommandHandler
	LoginUser      commands.LoginUserCommandHandler
	RefreshSession commands.RefreshSessionCommandHandler
	LogoutUser     commands.LogoutUserCommandHandler
	UpdateProfile  commands.UpdateProfileCommandHandler
	CreateAddress  commands.CreateAddressCommandHandler
	PlaceOrder     commands.PlaceOrderCommandHandler
	CancelOrder    commands.CancelOrderCommandHandler

	// Query handlers
	GetProfile    queries.GetProfileQueryHandler
	ListAddresses queries.ListAddressesQueryHandler
	GetOrder      queries.GetOrderQueryHandler
	GetUserOrders queries.GetUserOrdersQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
// Errors are returned to Echo and rendered by the handler from NewErrorHandler.
type Server struct {
	handlers Handlers
	cookies  CookieConfig
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, cookies CookieConfig) *Server {
	return &Server{
		handlers: handlers,
		cookies:  cookies,
	}
}
