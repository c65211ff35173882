package http

import (
	"net/http"

	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Register handles POST /api/v1/auth/register - creates an account and signs it in.
func (s *Server) Register(ctx echo.Context) error {
	var req servers.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(err)
	}

	input := registerInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    deref(req.Phone),
	}
	if err := ctx.Validate(input); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterUserCommand(input.Name, input.Email, input.Password, input.Phone)
	if err != nil {
		return err
	}

	result, err := s.handlers.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	s.setAuthCookies(ctx, result.Tokens)
	return ctx.JSON(http.StatusCreated, servers.AuthResponse{
		Success: true,
		Message: "User registered successfully",
		Data:    toAuthData(result),
	})
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req servers.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(err)
	}

	input := loginInput{Email: req.Email, Password: req.Password}
	if err := ctx.Validate(input); err != nil {
		return err
	}

	cmd, err := commands.NewLoginUserCommand(input.Email, input.Password)
	if err != nil {
		return err
	}

	result, err := s.handlers.LoginUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	s.setAuthCookies(ctx, result.Tokens)
	return ctx.JSON(http.StatusOK, servers.AuthResponse{
		Success: true,
		Message: "Login successful",
		Data:    toAuthData(result),
	})
}

// RefreshSession handles POST /api/v1/auth/refresh - rotates the refresh token.
func (s *Server) RefreshSession(ctx echo.Context) error {
	var req servers.RefreshTokenRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(err)
	}

	cmd, err := commands.NewRefreshSessionCommand(refreshTokenFrom(ctx, req.RefreshToken))
	if err != nil {
		return err
	}

	result, err := s.handlers.RefreshSession.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	s.setAuthCookies(ctx, result.Tokens)
	return ctx.JSON(http.StatusOK, servers.AuthResponse{
		Success: true,
		Message: "Token refreshed successfully",
		Data:    toAuthData(result),
	})
}

// Logout handles POST /api/v1/auth/logout - revokes the session and clears
// the token cookies. Logging out twice is not an error.
func (s *Server) Logout(ctx echo.Context) error {
	var req servers.RefreshTokenRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(err)
	}

	cmd := commands.NewLogoutUserCommand(refreshTokenFrom(ctx, req.RefreshToken))
	if err := s.handlers.LogoutUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	s.clearAuthCookies(ctx)
	return ctx.JSON(http.StatusOK, servers.MessageResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}
