package http

import (
	"net/http"
	"strings"

	"swiftdrop/api"
	"swiftdrop/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// RouterConfig holds the transport settings of NewRouter.
type RouterConfig struct {
	// AllowOrigins lists the CORS origins allowed to send credentials.
	AllowOrigins []string
	// LogLevel is applied to Echo's own logger.
	LogLevel string
}

// NewRouter builds the Echo instance: API routes under /api/v1 validated
// against api/openapi.yml, plus /health, /metrics and /swagger/*.
func NewRouter(server *Server, auth *Authenticator, cfg RouterConfig, logger *zap.Logger) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(api.OpenAPISpec)
	if err != nil {
		return nil, err
	}

	validator, err := OpenAPIValidator(doc, auth)
	if err != nil {
		return nil, err
	}

	if err = RegisterSwagger(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(echoLogLevel(cfg.LogLevel))
	e.HTTPErrorHandler = NewErrorHandler(logger)
	e.Validator = NewRequestValidator()

	e.Use(RequestMetrics())
	e.Use(RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowOrigins,
		AllowCredentials: true,
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
		},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodOptions,
		},
	}))
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}

func echoLogLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
