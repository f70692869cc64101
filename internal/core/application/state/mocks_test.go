package state_test

import (
	"context"
	"testing"

	"dashboard/internal/core/domain/model/driver"
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

type MockDriverGateway struct{ mock.Mock }

func (m *MockDriverGateway) ListDrivers(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

func newOrder(t *testing.T, id kernel.ID, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.Params{
		ID:       id,
		Number:   "ORD-" + id.String(),
		Status:   status,
		Customer: order.Customer{Name: "Ada", Email: "ada@example.com"},
		Quantity: 1,
	})
	require.NoError(t, err)
	return o
}

func newDriver(t *testing.T, id kernel.ID, name string) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(id, name)
	require.NoError(t, err)
	return d
}
