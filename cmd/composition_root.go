package cmd

import (
	"time"

	http_adapter "swiftdrop/internal/adapters/in/http"
	"swiftdrop/internal/adapters/out/kafka"
	"swiftdrop/internal/adapters/out/postgres"
	"swiftdrop/internal/adapters/out/security"
	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/application/usecases/queries"
	"swiftdrop/internal/core/domain/services"
	"swiftdrop/internal/core/ports"
	"swiftdrop/internal/jobs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *zap.Logger

	hasher    ports.PasswordHasher
	tokens    *security.JWTTokenService
	producer  kafka.Producer
	publisher ports.OrderEventPublisher
	distance  services.DistanceProvider
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *zap.Logger) (*CompositionRoot, error) {
	tokens, err := security.NewJWTTokenService(security.TokenConfig{
		AccessSecret:  configs.JWTSecret,
		RefreshSecret: configs.JWTRefreshSecret,
		AccessTTL:     configs.AccessTokenTTL,
		RefreshTTL:    configs.RefreshTokenTTL,
	})
	if err != nil {
		return nil, err
	}

	var producer kafka.Producer
	if configs.KafkaHost != "" {
		producer = kafka.NewWriterProducer(configs.KafkaHost)
	} else {
		logger.Warn("KAFKA_HOST is not set, order events are written to the log")
		producer = kafka.NewLogProducer(logger)
	}

	return &CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		hasher:     security.NewBcryptHasher(security.DefaultBcryptCost),
		tokens:     tokens,
		producer:   producer,
		publisher:  kafka.NewOrderEventPublisher(producer, configs.KafkaOrderPlacedTopic),
		distance:   services.NewRandomDistanceProvider(nil),
	}, nil
}

func (c *CompositionRoot) authUoWFactory() commands.AuthUoWFactory {
	return FuncAuthUoWFactory(func() commands.AuthUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.authUoWFactory(), c.hasher, c.tokens, c.logger)
}

func (c *CompositionRoot) CreateLoginUserCommandHandler() commands.LoginUserCommandHandler {
	return commands.NewLoginUserCommandHandler(c.authUoWFactory(), c.hasher, c.tokens, c.logger)
}

func (c *CompositionRoot) CreateRefreshSessionCommandHandler() commands.RefreshSessionCommandHandler {
	return commands.NewRefreshSessionCommandHandler(c.authUoWFactory(), c.tokens, c.logger)
}

func (c *CompositionRoot) CreateLogoutUserCommandHandler() commands.LogoutUserCommandHandler {
	return commands.NewLogoutUserCommandHandler(c.authUoWFactory(), c.tokens, c.logger)
}

func (c *CompositionRoot) CreatePurgeSessionsCommandHandler() commands.PurgeSessionsCommandHandler {
	return commands.NewPurgeSessionsCommandHandler(c.authUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateUpdateProfileCommandHandler() commands.UpdateProfileCommandHandler {
	return commands.NewUpdateProfileCommandHandler(c.logger)
}

func (c *CompositionRoot) CreateCreateAddressCommandHandler() commands.CreateAddressCommandHandler {
	var f commands.AddressUoWFactory = FuncAddressUoWFactory(func() commands.AddressUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAddressCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(
		f,
		c.distance,
		services.NewPricingCalculator(time.Now),
		c.publisher,
		c.logger,
	)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.logger)
}

func (c *CompositionRoot) CreateGetProfileQueryHandler() queries.GetProfileQueryHandler {
	return queries.NewGetProfileQueryHandler(c.uowFactory.Create().UserRepository())
}

func (c *CompositionRoot) CreateListAddressesQueryHandler() queries.ListAddressesQueryHandler {
	return queries.NewListAddressesQueryHandler(c.uowFactory.Create().AddressRepository())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.uowFactory.Create().OrderRepository())
}

// CreateRouter wires every handler into the Echo router.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := http_adapter.NewServer(http_adapter.Handlers{
		RegisterUser:   c.CreateRegisterUserCommandHandler(),
		LoginUser:      c.CreateLoginUserCommandHandler(),
		RefreshSession: c.CreateRefreshSessionCommandHandler(),
		LogoutUser:     c.CreateLogoutUserCommandHandler(),
		UpdateProfile:  c.CreateUpdateProfileCommandHandler(),
		CreateAddress:  c.CreateCreateAddressCommandHandler(),
		PlaceOrder:     c.CreatePlaceOrderCommandHandler(),
		CancelOrder:    c.CreateCancelOrderCommandHandler(),
		GetProfile:     c.CreateGetProfileQueryHandler(),
		ListAddresses:  c.CreateListAddressesQueryHandler(),
		GetOrder:       c.CreateGetOrderQueryHandler(),
		GetUserOrders:  c.CreateGetUserOrdersQueryHandler(),
	}, http_adapter.CookieConfig{Secure: c.configs.CookieSecure})

	auth := http_adapter.NewAuthenticator(c.tokens, c.uowFactory.Create().UserRepository())

	return http_adapter.NewRouter(server, auth, http_adapter.RouterConfig{
		AllowOrigins: c.configs.CORSAllowOrigins,
		LogLevel:     c.configs.LogLevel,
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreatePurgeSessionsCommandHandler(), c.configs.SessionCleanupSchedule, c.logger)
}

// Close flushes the event producer.
func (c *CompositionRoot) Close() error {
	return c.producer.Close()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAuthUoWFactory func() commands.AuthUoW

func (f FuncAuthUoWFactory) Create() commands.AuthUoW {
	return f()
}

type FuncAddressUoWFactory func() commands.AddressUoW

func (f FuncAddressUoWFactory) Create() commands.AddressUoW {
	return f()
}
