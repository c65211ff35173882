package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	http_adapter "swiftdrop/internal/adapters/in/http"
	"swiftdrop/internal/adapters/out/kafka"
	postgres_adapter "swiftdrop/internal/adapters/out/postgres"
	"swiftdrop/internal/adapters/out/security"
	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/application/usecases/queries"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/services"
	"swiftdrop/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type orderUoWFactory struct{ f *postgres_adapter.GormUnitOfWorkFactory }

func (u orderUoWFactory) Create() commands.OrderUoW { return u.f.Create() }

type authUoWFactory struct{ f *postgres_adapter.GormUnitOfWorkFactory }

func (u authUoWFactory) Create() commands.AuthUoW { return u.f.Create() }

type addressUoWFactory struct{ f *postgres_adapter.GormUnitOfWorkFactory }

func (u addressUoWFactory) Create() commands.AddressUoW { return u.f.Create() }

// APISuite drives the full HTTP stack against an in-memory SQLite database.
type APISuite struct {
	suite.Suite
	db *gorm.DB
	e  *echo.Echo
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	name := strings.ReplaceAll(s.T().Name(), "/", "_")
	db, err := postgres_adapter.Open(postgres_adapter.Options{
		Driver:     postgres_adapter.DriverSQLite,
		SQLitePath: "file:" + name + "?mode=memory&cache=shared",
	})
	s.Require().NoError(err)
	s.Require().NoError(postgres_adapter.Migrate(db))
	s.db = db

	logger := zap.NewNop()
	factory := postgres_adapter.NewGormUnitOfWorkFactory(db)
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	tokens, err := security.NewJWTTokenService(security.TokenConfig{
		AccessSecret:  "access-secret-for-tests",
		RefreshSecret: "refresh-secret-for-tests",
	})
	s.Require().NoError(err)

	publisher := kafka.NewOrderEventPublisher(kafka.NewLogProducer(logger), "orders.placed")
	pool := factory.Create()

	handlers := http_adapter.Handlers{
		RegisterUser:   commands.NewRegisterUserCommandHandler(authUoWFactory{factory}, hasher, tokens, logger),
		LoginUser:      commands.NewLoginUserCommandHandler(authUoWFactory{factory}, hasher, tokens, logger),
		RefreshSession: commands.NewRefreshSessionCommandHandler(authUoWFactory{factory}, tokens, logger),
		LogoutUser:     commands.NewLogoutUserCommandHandler(authUoWFactory{factory}, tokens, logger),
		UpdateProfile:  commands.NewUpdateProfileCommandHandler(logger),
		CreateAddress:  commands.NewCreateAddressCommandHandler(addressUoWFactory{factory}),
		PlaceOrder: commands.NewPlaceOrderCommandHandler(orderUoWFactory{factory},
			services.FixedDistanceProvider{Km: 4}, services.NewPricingCalculator(time.Now), publisher, logger),
		CancelOrder:   commands.NewCancelOrderCommandHandler(logger),
		GetProfile:    queries.NewGetProfileQueryHandler(pool.UserRepository()),
		ListAddresses: queries.NewListAddressesQueryHandler(pool.AddressRepository()),
		GetOrder:      queries.NewGetOrderQueryHandler(pool.OrderRepository()),
		GetUserOrders: queries.NewGetUserOrdersQueryHandler(pool.OrderRepository()),
	}

	e, err := http_adapter.NewRouter(
		http_adapter.NewServer(handlers, http_adapter.CookieConfig{}),
		http_adapter.NewAuthenticator(tokens, pool.UserRepository()),
		http_adapter.RouterConfig{AllowOrigins: []string{"http://localhost:3000"}},
		logger,
	)
	s.Require().NoError(err)
	s.e = e
}

func (s *APISuite) TearDownTest() {
	s.Require().NoError(postgres_adapter.Close(s.db))
}

func (s *APISuite) do(method, path string, body any, token string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *APISuite) decode(rec *httptest.ResponseRecorder, into any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), into), rec.Body.String())
}

func (s *APISuite) assertError(rec *httptest.ResponseRecorder, status int, code, message string) {
	s.Require().Equal(status, rec.Code, rec.Body.String())

	var body servers.Error
	s.decode(rec, &body)
	s.False(body.Success)
	s.Equal(code, body.Code)
	if message != "" {
		s.Equal(message, body.Message)
	}
}

func (s *APISuite) register(name, email string) servers.AuthData {
	rec := s.do(http.MethodPost, "/api/v1/auth/register", servers.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "secret123",
	}, "")
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var body servers.AuthResponse
	s.decode(rec, &body)
	return body.Data
}

func (s *APISuite) createAddress(token, street, city string) servers.Address {
	rec := s.do(http.MethodPost, "/api/v1/users/addresses", servers.CreateAddressRequest{
		Street: street,
		City:   city,
	}, token)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var body servers.AddressResponse
	s.decode(rec, &body)
	return body.Data
}

func (s *APISuite) placeOrder(token, pickupID, deliveryID string) servers.Order {
	rec := s.do(http.MethodPost, "/api/v1/orders", servers.PlaceOrderRequest{
		PickupAddressId:   pickupID,
		DeliveryAddressId: deliveryID,
		ItemDescription:   "Two boxes of books",
	}, token)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var body servers.OrderResponse
	s.decode(rec, &body)
	return body.Data
}

func cookieByName(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func (s *APISuite) Test_RegisterReturnsUserAndSetsCookies() {
	rec := s.do(http.MethodPost, "/api/v1/auth/register", servers.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "Jane@Example.com",
		Password: "secret123",
	}, "")
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var body servers.AuthResponse
	s.decode(rec, &body)
	s.True(body.Success)
	s.Equal("User registered successfully", body.Message)
	s.Equal("jane@example.com", body.Data.User.Email)
	s.Equal(servers.USER, body.Data.User.Role)
	s.NotEmpty(body.Data.AccessToken)
	s.NotEmpty(body.Data.RefreshToken)
	s.NotContains(rec.Body.String(), "password")

	access := cookieByName(rec, http_adapter.AccessTokenCookie)
	s.Require().NotNil(access)
	s.True(access.HttpOnly)
	s.Equal(body.Data.AccessToken, access.Value)
	s.NotNil(cookieByName(rec, http_adapter.RefreshTokenCookie))
}

func (s *APISuite) Test_RegisterWithTakenEmailConflicts() {
	s.register("Jane", "jane@example.com")

	rec := s.do(http.MethodPost, "/api/v1/auth/register", servers.RegisterRequest{
		Name:     "Other Jane",
		Email:    "JANE@example.com",
		Password: "secret123",
	}, "")

	s.assertError(rec, http.StatusConflict, http_adapter.CodeConflict, "Email already exists")
}

func (s *APISuite) Test_RegisterRejectsShortPassword() {
	rec := s.do(http.MethodPost, "/api/v1/auth/register", servers.RegisterRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "12345",
	}, "")

	s.assertError(rec, http.StatusBadRequest, http_adapter.CodeValidation, "Password must be at least 6 characters")
}

func (s *APISuite) Test_RegisterRejectsMissingFields() {
	rec := s.do(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email": "jane@example.com",
	}, "")

	s.assertError(rec, http.StatusBadRequest, http_adapter.CodeValidation, "")
}

func (s *APISuite) Test_LoginWithWrongPasswordIsUnauthorized() {
	s.register("Jane", "jane@example.com")

	rec := s.do(http.MethodPost, "/api/v1/auth/login", servers.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong-password",
	}, "")

	s.assertError(rec, http.StatusUnauthorized, http_adapter.CodeUnauthorized, "Invalid email or password")
}

func (s *APISuite) Test_LoginCookieAuthenticatesRequests() {
	s.register("Jane", "jane@example.com")

	login := s.do(http.MethodPost, "/api/v1/auth/login", servers.LoginRequest{
		Email:    "jane@example.com",
		Password: "secret123",
	}, "")
	s.Require().Equal(http.StatusOK, login.Code, login.Body.String())

	access := cookieByName(login, http_adapter.AccessTokenCookie)
	s.Require().NotNil(access)

	rec := s.do(http.MethodGet, "/api/v1/users/profile", nil, "", access)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var body servers.UserResponse
	s.decode(rec, &body)
	s.Equal("Profile retrieved successfully", body.Message)
	s.Equal("jane@example.com", body.Data.Email)
}

func (s *APISuite) Test_ProtectedRouteWithoutToken() {
	rec := s.do(http.MethodGet, "/api/v1/orders", nil, "")

	s.assertError(rec, http.StatusUnauthorized, http_adapter.CodeUnauthorized,
		"You are not logged in. Please log in to get access")
}

func (s *APISuite) Test_ProtectedRouteWithForgedToken() {
	rec := s.do(http.MethodGet, "/api/v1/users/profile", nil, "not-a-jwt")

	s.assertError(rec, http.StatusUnauthorized, http_adapter.CodeUnauthorized, "Invalid or expired token")
}

func (s *APISuite) Test_AuthenticationRunsBeforeBodyValidation() {
	rec := s.do(http.MethodPost, "/api/v1/orders", map[string]string{}, "")

	s.assertError(rec, http.StatusUnauthorized, http_adapter.CodeUnauthorized, "")
}

func (s *APISuite) Test_PlaceOrderAndReadItBack() {
	auth := s.register("Jane", "jane@example.com")
	pickup := s.createAddress(auth.AccessToken, "1 Main St", "Lagos")
	delivery := s.createAddress(auth.AccessToken, "9 Side St", "Lagos")

	placed := s.placeOrder(auth.AccessToken, pickup.Id, delivery.Id)
	s.True(kernel.IsValidID(placed.Id))
	s.Equal(servers.PENDING, placed.Status)
	s.Equal(auth.User.Id, placed.UserId)
	s.Equal("5.00", placed.BaseFee)
	s.Equal("10.00", placed.DeliveryFee)
	s.Equal("15.00", placed.TotalAmount)
	s.True(placed.EstimatedDelivery.After(placed.CreatedAt))
	s.Equal(pickup.Id, placed.PickupAddress.Id)
	s.Equal(delivery.Id, placed.DeliveryAddress.Id)
	s.Equal("jane@example.com", placed.User.Email)
	s.Nil(placed.Rider)
	s.Require().Len(placed.Tracking, 1)
	s.Equal("PENDING", placed.Tracking[0].Status)
	s.Equal("Order placed successfully", placed.Tracking[0].Note)

	rec := s.do(http.MethodGet, "/api/v1/orders/"+placed.Id, nil, auth.AccessToken)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var got servers.OrderResponse
	s.decode(rec, &got)
	s.Equal("Order retrieved successfully", got.Message)
	s.Equal(placed.Id, got.Data.Id)
	s.Equal(placed.TotalAmount, got.Data.TotalAmount)

	rec = s.do(http.MethodGet, "/api/v1/orders", nil, auth.AccessToken)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var list servers.OrderListResponse
	s.decode(rec, &list)
	s.Equal("Orders retrieved successfully", list.Message)
	s.Require().Len(list.Data, 1)
	s.Equal(placed.Id, list.Data[0].Id)
	s.Equal(servers.Pagination{Page: 1, Limit: 10, Total: 1, Pages: 1}, list.Pagination)
}

func (s *APISuite) placeRawOrder(token, body string) *httptest.ResponseRecorder {
	return s.do(http.MethodPost, "/api/v1/orders", json.RawMessage(body), token)
}

func (s *APISuite) Test_PlaceOrderKeepsEstimatedValueExact() {
	auth := s.register("Jane", "jane@example.com")
	pickup := s.createAddress(auth.AccessToken, "1 Main St", "Lagos")
	delivery := s.createAddress(auth.AccessToken, "9 Side St", "Lagos")

	rec := s.placeRawOrder(auth.AccessToken, `{"pickupAddressId":"`+pickup.Id+`","deliveryAddressId":"`+
		delivery.Id+`","itemDescription":"Watch","estimatedValue":1234567.89}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var placed servers.OrderResponse
	s.decode(rec, &placed)
	s.Require().NotNil(placed.Data.EstimatedValue)
	s.Equal("1234567.89", *placed.Data.EstimatedValue)
	s.Equal("30.00", placed.Data.DeliveryFee)

	rec = s.do(http.MethodGet, "/api/v1/orders/"+placed.Data.Id, nil, auth.AccessToken)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var got servers.OrderResponse
	s.decode(rec, &got)
	s.Require().NotNil(got.Data.EstimatedValue)
	s.Equal("1234567.89", *got.Data.EstimatedValue)
}

func (s *APISuite) Test_PlaceOrderJustAboveInsuranceFloor() {
	auth := s.register("Jane", "jane@example.com")
	pickup := s.createAddress(auth.AccessToken, "1 Main St", "Lagos")
	delivery := s.createAddress(auth.AccessToken, "9 Side St", "Lagos")

	rec := s.placeRawOrder(auth.AccessToken, `{"pickupAddressId":"`+pickup.Id+`","deliveryAddressId":"`+
		delivery.Id+`","itemDescription":"Vase","estimatedValue":100.000001}`)

	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var placed servers.OrderResponse
	s.decode(rec, &placed)
	s.Equal("12.00", placed.Data.DeliveryFee)
	s.Equal("17.00", placed.Data.TotalAmount)
}

func (s *APISuite) Test_PlaceOrderRejectsUnstorableEstimatedValue() {
	auth := s.register("Jane", "jane@example.com")
	pickup := s.createAddress(auth.AccessToken, "1 Main St", "Lagos")
	delivery := s.createAddress(auth.AccessToken, "9 Side St", "Lagos")

	rec := s.placeRawOrder(auth.AccessToken, `{"pickupAddressId":"`+pickup.Id+`","deliveryAddressId":"`+
		delivery.Id+`","itemDescription":"Gold","estimatedValue":100000000}`)

	s.assertError(rec, http.StatusBadRequest, http_adapter.CodeValidation,
		"Estimated value must be between 0 and 99999999.99")
}

func (s *APISuite) Test_PlaceOrderAcceptsLongItemImage() {
	auth := s.register("Jane", "jane@example.com")
	pickup := s.createAddress(auth.AccessToken, "1 Main St", "Lagos")
	delivery := s.createAddress(auth.AccessToken, "9 Side St", "Lagos")
	image := "https://cdn.example.com/" + strings.Repeat("a", 2049)

	rec := s.do(http.MethodPost, "/api/v1/orders", servers.PlaceOrderRequest{
		PickupAddressId:   pickup.Id,
		DeliveryAddressId: delivery.Id,
		ItemDescription:   "Painting",
		ItemImage:         &image,
	}, auth.AccessToken)

	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var placed servers.OrderResponse
	s.decode(rec, &placed)
	s.Require().NotNil(placed.Data.ItemImage)
	s.Equal(image, *placed.Data.ItemImage)
}

func (s *APISuite) Test_ListOrdersPaginates() {
	auth := s.register("Jane", "jane@example.com")
	pickup := s.createAddress(auth.AccessToken, "1 Main St", "Lagos")
	delivery := s.createAddress(auth.AccessToken, "9 Side St", "Abuja")
	for range 3 {
		s.placeOrder(auth.AccessToken, pickup.Id, delivery.Id)
	}

	rec := s.do(http.MethodGet, "/api/v1/orders?page=2&limit=2", nil, auth.AccessToken)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var list servers.OrderListResponse
	s.decode(rec, &list)
	s.Len(list.Data, 1)
	s.Equal(servers.Pagination{Page: 2, Limit: 2, Total: 3, Pages: 2}, list.Pagination)
}

func (s *APISuite) Test_ListOrdersRejectsOversizedLimit() {
	auth := s.register("Jane", "jane@example.com")

	rec := s.do(http.MethodGet, "/api/v1/orders?limit=51", nil, auth.AccessToken)

	s.assertError(rec, http.StatusBadRequest, http_adapter.CodeValidation, "Limit must be between 1 and 50")
}

func (s *APISuite) Test_PlaceOrderWithSameAddresses() {
	auth := s.register("Jane", "jane@example.com")
	pickup := s.createAddress(auth.AccessToken, "1 Main St", "Lagos")

	rec := s.do(http.MethodPost, "/api/v1/orders", servers.PlaceOrderRequest{
		PickupAddressId:   pickup.Id,
		DeliveryAddressId: pickup.Id,
		ItemDescription:   "Flowers",
	}, auth.AccessToken)

	s.assertError(rec, http.StatusBadRequest, http_adapter.CodeValidation,
		"Pickup and delivery addresses must be different")
}

func (s *APISuite) Test_PlaceOrderWithUnknownPickupAddress() {
	auth := s.register("Jane", "jane@example.com")
	delivery := s.createAddress(auth.AccessToken, "9 Side St", "Lagos")

	rec := s.do(http.MethodPost, "/api/v1/orders", servers.PlaceOrderRequest{
		PickupAddressId:   kernel.NewID().String(),
		DeliveryAddressId: delivery.Id,
		ItemDescription:   "Flowers",
	}, auth.AccessToken)

	s.assertError(rec, http.StatusNotFound, http_adapter.CodeNotFound, "Pickup address not found")
}

func (s *APISuite) Test_PlaceOrderWithAnotherUsersAddress() {
	owner := s.register("Jane", "jane@example.com")
	foreign := s.createAddress(owner.AccessToken, "1 Main St", "Lagos")

	other := s.register("John", "john@example.com")
	own := s.createAddress(other.AccessToken, "9 Side St", "Lagos")

	rec := s.do(http.MethodPost, "/api/v1/orders", servers.PlaceOrderRequest{
		PickupAddressId:   own.Id,
		DeliveryAddressId: foreign.Id,
		ItemDescription:   "Flowers",
	}, other.AccessToken)

	s.assertError(rec, http.StatusNotFound, http_adapter.CodeNotFound, "Delivery address not found")
}

func (s *APISuite) Test_GetOrderOfAnotherUserIsNotFound() {
	owner := s.register("Jane", "jane@example.com")
	pickup := s.createAddress(owner.AccessToken, "1 Main St", "Lagos")
	delivery := s.createAddress(owner.AccessToken, "9 Side St", "Lagos")
	placed := s.placeOrder(owner.AccessToken, pickup.Id, delivery.Id)

	stranger := s.register("John", "john@example.com")
	rec := s.do(http.MethodGet, "/api/v1/orders/"+placed.Id, nil, stranger.AccessToken)

	s.assertError(rec, http.StatusNotFound, http_adapter.CodeNotFound, "Order not found")
}

func (s *APISuite) Test_GetOrderWithMalformedID() {
	auth := s.register("Jane", "jane@example.com")

	rec := s.do(http.MethodGet, "/api/v1/orders/not-a-cuid", nil, auth.AccessToken)

	s.assertError(rec, http.StatusBadRequest, http_adapter.CodeValidation, "Invalid order ID format")
}

func (s *APISuite) Test_AddressBookIsNewestFirst() {
	auth := s.register("Jane", "jane@example.com")
	first := s.createAddress(auth.AccessToken, "1 Main St", "Lagos")
	second := s.createAddress(auth.AccessToken, "9 Side St", "Abuja")

	rec := s.do(http.MethodGet, "/api/v1/users/addresses", nil, auth.AccessToken)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var body servers.AddressListResponse
	s.decode(rec, &body)
	s.Require().Len(body.Data, 2)
	s.Equal(second.Id, body.Data[0].Id)
	s.Equal(first.Id, body.Data[1].Id)
}

func (s *APISuite) Test_CreateAddressRequiresStreet() {
	auth := s.register("Jane", "jane@example.com")

	rec := s.do(http.MethodPost, "/api/v1/users/addresses", servers.CreateAddressRequest{
		City: "Lagos",
	}, auth.AccessToken)

	s.assertError(rec, http.StatusBadRequest, http_adapter.CodeValidation, "Street is required")
}

func (s *APISuite) Test_RefreshRotatesSession() {
	auth := s.register("Jane", "jane@example.com")
	old := auth.RefreshToken

	rec := s.do(http.MethodPost, "/api/v1/auth/refresh", servers.RefreshTokenRequest{RefreshToken: &old}, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var body servers.AuthResponse
	s.decode(rec, &body)
	s.Equal("Token refreshed successfully", body.Message)
	s.NotEqual(old, body.Data.RefreshToken)

	reuse := s.do(http.MethodPost, "/api/v1/auth/refresh", servers.RefreshTokenRequest{RefreshToken: &old}, "")
	s.assertError(reuse, http.StatusUnauthorized, http_adapter.CodeUnauthorized, "")
}

func (s *APISuite) Test_RefreshReadsCookie() {
	s.register("Jane", "jane@example.com")
	login := s.do(http.MethodPost, "/api/v1/auth/login", servers.LoginRequest{
		Email:    "jane@example.com",
		Password: "secret123",
	}, "")
	s.Require().Equal(http.StatusOK, login.Code)

	refresh := cookieByName(login, http_adapter.RefreshTokenCookie)
	s.Require().NotNil(refresh)

	rec := s.do(http.MethodPost, "/api/v1/auth/refresh", nil, "", refresh)
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())
}

func (s *APISuite) Test_LogoutRevokesSessionAndIsIdempotent() {
	auth := s.register("Jane", "jane@example.com")
	token := auth.RefreshToken

	for range 2 {
		rec := s.do(http.MethodPost, "/api/v1/auth/logout", servers.RefreshTokenRequest{RefreshToken: &token}, "")
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

		var body servers.MessageResponse
		s.decode(rec, &body)
		s.Equal("Logged out successfully", body.Message)

		cleared := cookieByName(rec, http_adapter.RefreshTokenCookie)
		s.Require().NotNil(cleared)
		s.Empty(cleared.Value)
	}

	rec := s.do(http.MethodPost, "/api/v1/auth/refresh", servers.RefreshTokenRequest{RefreshToken: &token}, "")
	s.assertError(rec, http.StatusUnauthorized, http_adapter.CodeUnauthorized, "")
}

func (s *APISuite) Test_PlaceholderOperations() {
	auth := s.register("Jane", "jane@example.com")

	rec := s.do(http.MethodPut, "/api/v1/orders/"+kernel.NewID().String()+"/cancel", nil, auth.AccessToken)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var cancelled servers.MessageResponse
	s.decode(rec, &cancelled)
	s.Equal(commands.CancelOrderPlaceholder, cancelled.Message)

	rec = s.do(http.MethodPut, "/api/v1/orders/bad-id/cancel", nil, auth.AccessToken)
	s.assertError(rec, http.StatusBadRequest, http_adapter.CodeValidation, "Invalid order ID format")

	name := "Jane D."
	rec = s.do(http.MethodPatch, "/api/v1/users/profile", servers.UpdateProfileRequest{Name: &name}, auth.AccessToken)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var updated servers.MessageResponse
	s.decode(rec, &updated)
	s.Equal(commands.UpdateProfilePlaceholder, updated.Message)
}

func (s *APISuite) Test_OperationalEndpoints() {
	rec := s.do(http.MethodGet, "/health", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Healthy", rec.Body.String())

	rec = s.do(http.MethodGet, "/metrics", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "swiftdrop_http_request_duration_seconds")

	rec = s.do(http.MethodGet, "/swagger/doc.json", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Swiftdrop Delivery API")
}

func (s *APISuite) Test_UnknownRoute() {
	rec := s.do(http.MethodGet, "/api/v1/unknown", nil, "")

	s.assertError(rec, http.StatusNotFound, "NOT_FOUND", "")
}
