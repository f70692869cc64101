package queries_test

import (
	"context"
	"testing"

	"dashboard/internal/core/domain/model/account"
	"dashboard/internal/core/domain/model/driver"
	"dashboard/internal/core/domain/model/journal"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderGateway struct{ mock.Mock }

func (m *MockOrderGateway) ListOrders(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderGateway) GetOrder(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderGateway) ChangeStatus(ctx context.Context, id kernel.ID, status order.Status) (order.Status, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(order.Status), args.Error(1)
}

func (m *MockOrderGateway) AssignDriver(ctx context.Context, id kernel.ID, driverID kernel.ID) (*driver.Driver, error) {
	args := m.Called(ctx, id, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

type MockCatalogGateway struct{ mock.Mock }

func (m *MockCatalogGateway) CountCategories(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogGateway) CountFoods(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogGateway) CountUsers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockAuthGateway struct{ mock.Mock }

func (m *MockAuthGateway) Login(ctx context.Context, credentials account.Credentials) (account.User, string, error) {
	args := m.Called(ctx, credentials)
	return args.Get(0).(account.User), args.String(1), args.Error(2)
}

func (m *MockAuthGateway) GetUser(ctx context.Context, id kernel.ID) (account.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(account.User), args.Error(1)
}

func newOrder(t *testing.T, id kernel.ID, status order.Status, assigned *driver.Driver) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.Params{
		ID:     id,
		Number: "ORD-" + id.String(),
		Status: status,
		Driver: assigned,
	})
	require.NoError(t, err)
	return o
}

type MockDriverGateway struct{ mock.Mock }

func (m *MockDriverGateway) ListDrivers(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

type MockJournalRepository struct{ mock.Mock }

func (m *MockJournalRepository) Add(ctx context.Context, entry journal.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) Get(ctx context.Context, id kernel.UUID) (journal.Entry, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(journal.Entry), args.Error(1)
}
