package queries

import (
	"errors"
	"time"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/guard"
)

var (
	ErrGetJournalQueryIsNotConstructed = errors.New(
		"GetJournalQuery must be created via NewGetJournalQuery or NewGetOrderJournalQuery constructor",
	)
	ErrJournalDisabled = errors.New("journal is disabled: no database configured")
)

// GetJournalQuery lists settled requests, optionally for a single order.
//
// Example:
//
//	query, err := NewGetOrderJournalQuery(7)
//	entries, err := handler.Handle(ctx, query)
//	for _, e := range entries {
//	    fmt.Printf("%s %s -> %s: %s\n", e.Action, e.FromStatus, e.ToStatus, e.Outcome)
//	}
type GetJournalQuery struct {
	orderID *kernel.ID

	guard guard.ConstructorGuard
}

// NewGetJournalQuery lists every entry.
func NewGetJournalQuery() GetJournalQuery {
	return GetJournalQuery{guard: guard.NewConstructorGuard()}
}

// NewGetOrderJournalQuery lists the entries of one order.
func NewGetOrderJournalQuery(orderID kernel.ID) (GetJournalQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetJournalQuery{}, err
	}
	return GetJournalQuery{orderID: &orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetJournalQuery) Validate() error {
	return q.guard.Validate(ErrGetJournalQueryIsNotConstructed)
}

// OrderID returns the order filter, if any.
func (q GetJournalQuery) OrderID() (kernel.ID, bool) {
	if q.orderID == nil {
		return 0, false
	}
	return *q.orderID, true
}

// GetJournalQueryResponse is one journal row. Statuses and outcome are kept as
// their wire strings.
type GetJournalQueryResponse struct {
	ID         kernel.UUID
	FlightID   kernel.UUID
	OrderID    kernel.ID
	Action     string
	FromStatus string
	ToStatus   string
	DriverID   *kernel.ID
	Outcome    string
	Error      string
	RecordedAt time.Time
}
