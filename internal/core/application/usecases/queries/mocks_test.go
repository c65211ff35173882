package queries_test

import (
	"context"

	"swiftdrop/internal/core/domain/model/address"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/user"
	"swiftdrop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) FindByID(ctx context.Context, orderID kernel.ID, userID *kernel.ID) (ports.OrderView, error) {
	args := m.Called(ctx, orderID, userID)
	return args.Get(0).(ports.OrderView), args.Error(1)
}

func (m *MockOrderReader) FindByUser(ctx context.Context, userID kernel.ID, page kernel.Page) ([]ports.OrderView, int64, error) {
	args := m.Called(ctx, userID, page)
	return args.Get(0).([]ports.OrderView), args.Get(1).(int64), args.Error(2)
}

type MockUserReader struct{ mock.Mock }

func (m *MockUserReader) Get(ctx context.Context, id kernel.ID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

type MockAddressReader struct{ mock.Mock }

func (m *MockAddressReader) ListByUser(ctx context.Context, userID kernel.ID) ([]*address.Address, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]*address.Address)
	return list, args.Error(1)
}
