// Package journal models the audit trail of admin requests against orders.
package journal

import (
	"errors"
	"time"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
)

// Action names the kind of request an entry records.
type Action string

const (
	ActionStatusChange     Action = "status_change"
	ActionDriverAssignment Action = "driver_assignment"
)

// Outcome is how the request settled.
type Outcome string

const (
	OutcomeConfirmed  Outcome = "confirmed"
	OutcomeFailed     Outcome = "failed"
	OutcomeSuperseded Outcome = "superseded"
)

// Entry is one settled request.
type Entry struct {
	ID         kernel.UUID
	FlightID   kernel.UUID
	OrderID    kernel.ID
	Action     Action
	FromStatus order.Status
	ToStatus   order.Status
	DriverID   *kernel.ID
	Outcome    Outcome
	Error      string
	RecordedAt time.Time
}

// NewEntry stamps a new entry with an id and the current time.
// err, when not nil, is stored as text.
func NewEntry(
	flightID kernel.UUID,
	orderID kernel.ID,
	action Action,
	from, to order.Status,
	driverID *kernel.ID,
	outcome Outcome,
	err error,
) Entry {
	e := Entry{
		ID:         kernel.NewUUID(),
		FlightID:   flightID,
		OrderID:    orderID,
		Action:     action,
		FromStatus: from,
		ToStatus:   to,
		Outcome:    outcome,
		RecordedAt: time.Now().UTC(),
	}
	if driverID != nil {
		id := *driverID
		e.DriverID = &id
	}
	if err != nil {
		e.Error = err.Error()
	}
	return e
}

// Validate checks the mandatory fields.
func (e Entry) Validate() error {
	var err error
	if idErr := e.ID.Validate(); idErr != nil {
		err = errors.Join(err, idErr)
	}
	if idErr := e.OrderID.Validate(); idErr != nil {
		err = errors.Join(err, idErr)
	}
	if e.Action != ActionStatusChange && e.Action != ActionDriverAssignment {
		err = errors.Join(err, errors.New("journal action is invalid"))
	}
	if e.Outcome != OutcomeConfirmed && e.Outcome != OutcomeFailed && e.Outcome != OutcomeSuperseded {
		err = errors.Join(err, errors.New("journal outcome is invalid"))
	}
	return err
}
