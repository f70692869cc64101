package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"dashboard/internal/core/application/state"
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

type MockDriverGateway struct{ mock.Mock }

func (m *MockDriverGateway) ListDrivers(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
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

type MockJournalRepository struct{ mock.Mock }

func (m *MockJournalRepository) Add(ctx context.Context, entry journal.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) Get(ctx context.Context, id kernel.UUID) (journal.Entry, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(journal.Entry), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
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

func newStore(t *testing.T, orders ...*order.Order) *state.OrderStore {
	t.Helper()
	store := state.NewOrderStore(new(MockOrderGateway))
	require.NoError(t, store.Replace(orders))
	return store
}

func getOrder(t *testing.T, store *state.OrderStore, id kernel.ID) *order.Order {
	t.Helper()
	o, err := store.Get(id)
	require.NoError(t, err)
	return o
}

// gate blocks a mocked backend call until released.
type gate struct {
	started chan struct{}
	release chan struct{}
}

func newGate() *gate {
	return &gate{started: make(chan struct{}), release: make(chan struct{})}
}

func (g *gate) run(mock.Arguments) {
	close(g.started)
	<-g.release
}

func (g *gate) waitStarted(t *testing.T) {
	t.Helper()
	select {
	case <-g.started:
	case <-time.After(time.Second):
		t.Fatal("backend call was not issued")
	}
}

func waitTicket(t *testing.T, ticket interface {
	Wait(ctx context.Context) (*order.Order, error)
}) (*order.Order, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(t.Context(), time.Second)
	defer cancel()
	return ticket.Wait(ctx)
}
