package http

import (
	"net/http"
	"time"

	"swiftdrop/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// CookieConfig controls the token cookies. Secure should be true behind TLS.
type CookieConfig struct {
	Secure bool
}

func (s *Server) setAuthCookies(c echo.Context, pair ports.TokenPair) {
	c.SetCookie(s.tokenCookie(AccessTokenCookie, pair.AccessToken, pair.AccessExpiresAt))
	c.SetCookie(s.tokenCookie(RefreshTokenCookie, pair.RefreshToken, pair.RefreshExpiresAt))
}

func (s *Server) clearAuthCookies(c echo.Context) {
	for _, name := range []string{AccessTokenCookie, RefreshTokenCookie} {
		cookie := s.tokenCookie(name, "", time.Unix(0, 0))
		cookie.MaxAge = -1
		c.SetCookie(cookie)
	}
}

func (s *Server) tokenCookie(name, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   s.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// refreshTokenFrom prefers the token from the request body over the cookie.
func refreshTokenFrom(c echo.Context, fromBody *string) string {
	if fromBody != nil && *fromBody != "" {
		return *fromBody
	}
	if cookie, err := c.Cookie(RefreshTokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}
