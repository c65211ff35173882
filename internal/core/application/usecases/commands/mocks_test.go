package commands_test

import (
	"context"
	"time"

	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/domain/model/address"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/order"
	"swiftdrop/internal/core/domain/model/session"
	"swiftdrop/internal/core/domain/model/user"
	"swiftdrop/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockAddressRepository struct{ mock.Mock }

func (m *MockAddressRepository) Add(ctx context.Context, a *address.Address) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAddressRepository) GetOwned(ctx context.Context, id, userID kernel.ID) (*address.Address, error) {
	args := m.Called(ctx, id, userID)
	a, _ := args.Get(0).(*address.Address)
	return a, args.Error(1)
}

func (m *MockAddressRepository) ListByUser(ctx context.Context, userID kernel.ID) ([]*address.Address, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]*address.Address)
	return list, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, orderID kernel.ID, userID *kernel.ID) (ports.OrderView, error) {
	args := m.Called(ctx, orderID, userID)
	return args.Get(0).(ports.OrderView), args.Error(1)
}

func (m *MockOrderRepository) FindByUser(ctx context.Context, userID kernel.ID, page kernel.Page) ([]ports.OrderView, int64, error) {
	args := m.Called(ctx, userID, page)
	return args.Get(0).([]ports.OrderView), args.Get(1).(int64), args.Error(2)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.ID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Add(ctx context.Context, s *session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*session.Session)
	return s, args.Error(1)
}

func (m *MockSessionRepository) Update(ctx context.Context, s *session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteInactive(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockTx covers the transaction methods shared by every unit of work mock.
type MockTx struct{ mock.Mock }

func (m *MockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct{ MockTx }

func (m *MockOrderUoW) AddressRepository() ports.AddressRepository {
	args := m.Called()
	return args.Get(0).(ports.AddressRepository)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockAuthUoW struct{ MockTx }

func (m *MockAuthUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockAuthUoW) SessionRepository() ports.SessionRepository {
	args := m.Called()
	return args.Get(0).(ports.SessionRepository)
}

type MockAuthUoWFactory struct{ mock.Mock }

func (m *MockAuthUoWFactory) Create() commands.AuthUoW {
	args := m.Called()
	return args.Get(0).(commands.AuthUoW)
}

type MockAddressUoW struct{ MockTx }

func (m *MockAddressUoW) AddressRepository() ports.AddressRepository {
	args := m.Called()
	return args.Get(0).(ports.AddressRepository)
}

type MockAddressUoWFactory struct{ mock.Mock }

func (m *MockAddressUoWFactory) Create() commands.AddressUoW {
	args := m.Called()
	return args.Get(0).(commands.AddressUoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}

type MockTokenService struct{ mock.Mock }

func (m *MockTokenService) IssuePair(subject *user.User, sessionID uuid.UUID, now time.Time) (ports.TokenPair, error) {
	args := m.Called(subject, sessionID, now)
	return args.Get(0).(ports.TokenPair), args.Error(1)
}

func (m *MockTokenService) VerifyAccess(token string) (ports.AccessClaims, error) {
	args := m.Called(token)
	return args.Get(0).(ports.AccessClaims), args.Error(1)
}

func (m *MockTokenService) VerifyRefresh(token string) (ports.RefreshClaims, error) {
	args := m.Called(token)
	return args.Get(0).(ports.RefreshClaims), args.Error(1)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishOrderPlaced(ctx context.Context, placed *order.Order) error {
	args := m.Called(ctx, placed)
	return args.Error(0)
}
