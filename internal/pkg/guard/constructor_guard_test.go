package guard_test

import (
	"errors"
	"testing"

	"dashboard/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTicketNotConstructed = errors.New("ticket must be created via newTicket")

type ticket struct {
	orderID int64
	guard   guard.ConstructorGuard
}

func newTicket(orderID int64) (ticket, error) {
	if orderID <= 0 {
		return ticket{}, errors.New("order id must be positive")
	}
	return ticket{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (t ticket) Validate() error {
	return t.guard.Validate(errTicketNotConstructed)
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errTicketNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(errTicketNotConstructed)

		// Then
		require.Error(t, err)
		assert.Equal(t, errTicketNotConstructed, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_Embedded(t *testing.T) {
	t.Run("constructor_marks_owner_valid", func(t *testing.T) {
		tk, err := newTicket(7)

		require.NoError(t, err)
		require.NoError(t, tk.Validate())
		assert.Equal(t, int64(7), tk.orderID)
	})

	t.Run("literal_owner_is_rejected", func(t *testing.T) {
		tk := ticket{orderID: 7}

		require.ErrorIs(t, tk.Validate(), errTicketNotConstructed)
	})

	t.Run("constructor_validation_still_applies", func(t *testing.T) {
		_, err := newTicket(0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be positive")
	})
}
