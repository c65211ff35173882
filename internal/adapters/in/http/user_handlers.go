package http

import (
	"net/http"

	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/application/usecases/queries"
	"swiftdrop/internal/core/domain/model/address"
	"swiftdrop/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetProfile handles GET /api/v1/users/profile.
func (s *Server) GetProfile(ctx echo.Context) error {
	identity, err := identityFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetProfileQuery(identity)
	if err != nil {
		return err
	}

	account, err := s.handlers.GetProfile.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.UserResponse{
		Success: true,
		Message: "Profile retrieved successfully",
		Data:    toUser(account),
	})
}

// UpdateProfile handles PATCH /api/v1/users/profile. Nothing is stored yet.
func (s *Server) UpdateProfile(ctx echo.Context) error {
	identity, err := identityFrom(ctx)
	if err != nil {
		return err
	}

	var req servers.UpdateProfileRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(err)
	}

	cmd, err := commands.NewUpdateProfileCommand(identity, req.Name, req.Phone)
	if err != nil {
		return err
	}

	message, err := s.handlers.UpdateProfile.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.MessageResponse{
		Success: true,
		Message: message,
	})
}

// ListAddresses handles GET /api/v1/users/addresses - newest first.
func (s *Server) ListAddresses(ctx echo.Context) error {
	identity, err := identityFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListAddressesQuery(identity)
	if err != nil {
		return err
	}

	list, err := s.handlers.ListAddresses.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.AddressListResponse{
		Success: true,
		Message: "Addresses retrieved successfully",
		Data:    toAddresses(list),
	})
}

// CreateAddress handles POST /api/v1/users/addresses.
func (s *Server) CreateAddress(ctx echo.Context) error {
	identity, err := identityFrom(ctx)
	if err != nil {
		return err
	}

	var req servers.CreateAddressRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(err)
	}

	input := addressInput{
		Label:      deref(req.Label),
		Street:     req.Street,
		City:       req.City,
		State:      deref(req.State),
		PostalCode: deref(req.PostalCode),
		Country:    deref(req.Country),
	}
	if err = ctx.Validate(input); err != nil {
		return err
	}

	cmd, err := commands.NewCreateAddressCommand(identity, address.Fields{
		Label:      input.Label,
		Street:     input.Street,
		City:       input.City,
		State:      input.State,
		PostalCode: input.PostalCode,
		Country:    input.Country,
	})
	if err != nil {
		return err
	}

	created, err := s.handlers.CreateAddress.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.AddressResponse{
		Success: true,
		Message: "Address created successfully",
		Data:    toAddress(created),
	})
}
