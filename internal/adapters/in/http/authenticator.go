package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"swiftdrop/internal/core/application/usecases/queries"
	"swiftdrop/internal/core/domain/model/user"
	"swiftdrop/internal/core/ports"
	"swiftdrop/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/labstack/echo/v4"
)

const (
	bearerAuthScheme = "bearerAuth"
	bearerPrefix     = "Bearer "
	identityKey      = "identity"
)

var (
	ErrNotLoggedIn        = errs.NewUnauthorizedError("you are not logged in. Please log in to get access")
	ErrUserNoLongerExists = errs.NewUnauthorizedError("the user belonging to this token no longer exists")
)

// echoContextKey carries the echo.Context through openapi3filter into
// AuthenticationFunc.
type echoContextKey struct{}

// Authenticator verifies access tokens and attaches the caller's
// user.Identity to the echo.Context.
type Authenticator struct {
	tokens ports.TokenService
	users  queries.UserReader
}

func NewAuthenticator(tokens ports.TokenService, users queries.UserReader) *Authenticator {
	return &Authenticator{
		tokens: tokens,
		users:  users,
	}
}

// Authenticate reads the token from the Authorization header or the
// accessToken cookie, verifies it and checks that its user still exists.
func (a *Authenticator) Authenticate(ctx context.Context, c echo.Context) error {
	token := accessTokenFrom(c.Request())
	if token == "" {
		return ErrNotLoggedIn
	}

	claims, err := a.tokens.VerifyAccess(token)
	if err != nil {
		return err
	}

	account, err := a.users.Get(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrUserNoLongerExists
		}
		return errs.AsInternal("failed to load token owner", err)
	}

	identity, err := account.Identity()
	if err != nil {
		return errs.AsInternal("failed to build identity", err)
	}

	c.Set(identityKey, identity)
	return nil
}

// AuthenticationFunc is the openapi3filter hook for operations secured by
// bearerAuth. The validator middleware stores the echo.Context in ctx.
func (a *Authenticator) AuthenticationFunc(ctx context.Context, input *openapi3filter.AuthenticationInput) error {
	if input.SecuritySchemeName != bearerAuthScheme {
		return input.NewError(fmt.Errorf("security scheme %q is not supported", input.SecuritySchemeName))
	}

	c, ok := ctx.Value(echoContextKey{}).(echo.Context)
	if !ok {
		return errs.NewInternalError("authentication context is missing", nil)
	}

	return a.Authenticate(ctx, c)
}

func accessTokenFrom(r *http.Request) string {
	if header := r.Header.Get(echo.HeaderAuthorization); strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}

// identityFrom returns the identity attached by Authenticate.
func identityFrom(c echo.Context) (user.Identity, error) {
	identity, ok := c.Get(identityKey).(user.Identity)
	if !ok {
		return user.Identity{}, ErrNotLoggedIn
	}
	return identity, nil
}
