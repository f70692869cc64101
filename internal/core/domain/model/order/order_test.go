package order_test

import (
	"testing"
	"time"

	"dashboard/internal/core/domain/model/driver"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustDriver(t *testing.T, id kernel.ID, name string) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(id, name)
	require.NoError(t, err)
	return d
}

func validParams(t *testing.T) order.Params {
	t.Helper()
	return order.Params{
		ID:       7,
		Number:   "ORD-0007",
		Status:   order.Pending,
		Customer: order.Customer{Name: "Ana", Email: "ana@example.com"},
		Details: []order.LineItem{
			{Name: "Margherita", Quantity: 2, Price: mustMoney(t, "8.50")},
		},
		Address:       &order.Address{ID: 4, Line: "1 Main St"},
		Quantity:      2,
		Total:         mustMoney(t, "17.00"),
		PaymentMethod: "cash",
		CreatedAt:     time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRestoreOrder(t *testing.T) {
	t.Run("valid pending order", func(t *testing.T) {
		o, err := order.RestoreOrder(validParams(t))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, kernel.ID(7), o.ID())
		assert.Equal(t, "ORD-0007", o.Number())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Driver())
		assert.False(t, o.HasDriver())
		assert.Equal(t, "Ana", o.Customer().Name)
		assert.Equal(t, "cash", o.PaymentMethod())
		assert.Equal(t, 2, o.Quantity())
		assert.Equal(t, "17.00", o.Total().String())
		assert.Equal(t, "17.00", o.Details()[0].Subtotal().String())
		assert.Equal(t, "1 Main St", o.Address().Line)
	})

	t.Run("pending order with a driver is rejected", func(t *testing.T) {
		p := validParams(t)
		p.Driver = mustDriver(t, 3, "Sam")

		_, err := order.RestoreOrder(p)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("declined order with a driver is rejected", func(t *testing.T) {
		p := validParams(t)
		p.Status = order.Declined
		p.Driver = mustDriver(t, 3, "Sam")

		_, err := order.RestoreOrder(p)
		require.Error(t, err)
	})

	t.Run("delivering order with a driver is accepted", func(t *testing.T) {
		p := validParams(t)
		p.Status = order.Delivering
		p.Driver = mustDriver(t, 3, "Sam")

		o, err := order.RestoreOrder(p)
		require.NoError(t, err)
		assert.Equal(t, kernel.ID(3), o.Driver().ID())
	})

	t.Run("collects every field error", func(t *testing.T) {
		_, err := order.RestoreOrder(order.Params{Quantity: -1})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ID must be created")
		assert.Contains(t, err.Error(), "order_number")
		assert.Contains(t, err.Error(), "status")
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("negative line item quantity is rejected", func(t *testing.T) {
		p := validParams(t)
		p.Details[0].Quantity = -2

		_, err := order.RestoreOrder(p)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_ValidateZeroValue(t *testing.T) {
	var o order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

	_, err := o.Apply(order.NewPatch())
	require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
}

func TestOrder_Accessors_ReturnCopies(t *testing.T) {
	p := validParams(t)
	p.Status = order.Assigning
	p.Driver = mustDriver(t, 3, "Sam")
	o, err := order.RestoreOrder(p)
	require.NoError(t, err)

	details := o.Details()
	details[0].Name = "changed"
	addr := o.Address()
	addr.Line = "changed"

	assert.Equal(t, "Margherita", o.Details()[0].Name)
	assert.Equal(t, "1 Main St", o.Address().Line)
	assert.NotSame(t, o.Driver(), o.Driver())
}

func TestOrder_Apply(t *testing.T) {
	t.Run("status patch leaves receiver untouched", func(t *testing.T) {
		o, err := order.RestoreOrder(validParams(t))
		require.NoError(t, err)

		updated, err := o.Apply(order.NewPatch().WithStatus(order.Accepted))

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, updated.Status())
		assert.Equal(t, order.Pending, o.Status())
		assert.True(t, updated.IsEqual(o))
	})

	t.Run("driver and status patch together", func(t *testing.T) {
		p := validParams(t)
		p.Status = order.Accepted
		o, err := order.RestoreOrder(p)
		require.NoError(t, err)

		updated, err := o.Apply(order.NewPatch().
			WithStatus(order.Assigning).
			WithDriver(mustDriver(t, 3, "Sam")))

		require.NoError(t, err)
		assert.Equal(t, order.Assigning, updated.Status())
		assert.Equal(t, "Sam", updated.Driver().Name())
	})

	t.Run("patch that breaks the driver invariant fails", func(t *testing.T) {
		o, err := order.RestoreOrder(validParams(t))
		require.NoError(t, err)

		_, err = o.Apply(order.NewPatch().WithDriver(mustDriver(t, 3, "Sam")))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("nil driver unassigns", func(t *testing.T) {
		p := validParams(t)
		p.Status = order.Assigning
		p.Driver = mustDriver(t, 3, "Sam")
		o, err := order.RestoreOrder(p)
		require.NoError(t, err)

		updated, err := o.Apply(order.NewPatch().WithStatus(order.Accepted).WithDriver(nil))

		require.NoError(t, err)
		assert.Nil(t, updated.Driver())
		assert.Equal(t, order.Accepted, updated.Status())
	})

	t.Run("empty patch is a copy", func(t *testing.T) {
		o, err := order.RestoreOrder(validParams(t))
		require.NoError(t, err)

		assert.True(t, order.NewPatch().IsEmpty())
		updated, err := o.Apply(order.NewPatch())
		require.NoError(t, err)
		assert.NotSame(t, o, updated)
		assert.Equal(t, o.Status(), updated.Status())
	})
}

func TestOrder_ValidateAssignDriver(t *testing.T) {
	testCases := []struct {
		name      string
		status    order.Status
		hasDriver bool
		allowed   bool
	}{
		{name: "accepted without driver", status: order.Accepted, allowed: true},
		{name: "assigning without driver", status: order.Assigning, allowed: true},
		{name: "assigning with driver", status: order.Assigning, hasDriver: true},
		{name: "pending", status: order.Pending},
		{name: "declined", status: order.Declined},
		{name: "delivering", status: order.Delivering, hasDriver: true},
		{name: "completed", status: order.Completed, hasDriver: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams(t)
			p.Status = tc.status
			if tc.hasDriver {
				p.Driver = mustDriver(t, 3, "Sam")
			}
			o, err := order.RestoreOrder(p)
			require.NoError(t, err)

			assert.Equal(t, tc.allowed, o.CanAssignDriver())
			if !tc.allowed {
				require.ErrorIs(t, o.ValidateAssignDriver(), order.ErrAssignmentNotAllowed)
			}
		})
	}
}

func TestPatch_Accessors(t *testing.T) {
	p := order.NewPatch().WithStatus(order.Declined)

	s, ok := p.Status()
	assert.True(t, ok)
	assert.Equal(t, order.Declined, s)

	_, touched := p.Driver()
	assert.False(t, touched)

	d, touched := p.WithDriver(nil).Driver()
	assert.True(t, touched)
	assert.Nil(t, d)
}
