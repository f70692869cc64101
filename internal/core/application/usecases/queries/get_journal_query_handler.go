package queries

import (
	"context"
	"database/sql"

	"dashboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetJournalQueryHandler reads the journal table directly.
//
// Example:
//
//	handler := NewGetJournalQueryHandler(db)
//	entries, err := handler.Handle(ctx, NewGetJournalQuery())
//	if errors.Is(err, ErrJournalDisabled) {
//	    // started without a database
//	}
type GetJournalQueryHandler struct {
	db *gorm.DB
}

// NewGetJournalQueryHandler creates the handler. A nil db disables the journal.
func NewGetJournalQueryHandler(db *gorm.DB) GetJournalQueryHandler {
	return GetJournalQueryHandler{db: db}
}

// Handle returns entries in recording order.
func (h GetJournalQueryHandler) Handle(ctx context.Context, query GetJournalQuery) ([]GetJournalQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if h.db == nil {
		return nil, ErrJournalDisabled
	}

	stmt := h.db.WithContext(ctx)
	sqlText := `
		SELECT
			id,
			flight_id,
			order_id,
			action,
			from_status,
			to_status,
			driver_id,
			outcome,
			error,
			recorded_at
		FROM journal_entries`

	var rows *sql.Rows
	var err error
	if orderID, ok := query.OrderID(); ok {
		rows, err = stmt.Raw(sqlText+` WHERE order_id = ? ORDER BY recorded_at, id`, orderID.Int64()).Rows()
	} else {
		rows, err = stmt.Raw(sqlText + ` ORDER BY recorded_at, id`).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetJournalQueryResponse, 0)
	for rows.Next() {
		var entry GetJournalQueryResponse
		var id, flightID uuid.UUID
		var orderID int64
		var driverID sql.NullInt64

		err = rows.Scan(
			&id,
			&flightID,
			&orderID,
			&entry.Action,
			&entry.FromStatus,
			&entry.ToStatus,
			&driverID,
			&entry.Outcome,
			&entry.Error,
			&entry.RecordedAt,
		)
		if err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromString(id.String()); err != nil {
			return nil, err
		}
		if entry.FlightID, err = kernel.UUIDFromString(flightID.String()); err != nil {
			return nil, err
		}
		entry.OrderID = kernel.ID(orderID)
		if driverID.Valid {
			d := kernel.ID(driverID.Int64)
			entry.DriverID = &d
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
