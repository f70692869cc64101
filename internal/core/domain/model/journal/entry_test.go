package journal_test

import (
	"errors"
	"testing"

	"dashboard/internal/core/domain/model/journal"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	driverID := kernel.ID(3)
	flight := kernel.NewUUID()

	e := journal.NewEntry(flight, 9, journal.ActionDriverAssignment,
		order.Accepted, order.Assigning, &driverID, journal.OutcomeFailed, errors.New("timeout"))

	require.NoError(t, e.Validate())
	assert.True(t, e.FlightID.IsEqual(flight))
	assert.Equal(t, kernel.ID(9), e.OrderID)
	assert.Equal(t, "timeout", e.Error)
	assert.False(t, e.RecordedAt.IsZero())

	driverID = 4
	assert.Equal(t, kernel.ID(3), *e.DriverID)
}

func TestEntry_Validate(t *testing.T) {
	var e journal.Entry

	err := e.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "action")
	assert.Contains(t, err.Error(), "outcome")
}
