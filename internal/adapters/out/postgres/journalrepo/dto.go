// Package journalrepo persists the action journal with GORM.
// It converts journal entries to rows of the journal_entries table and back.
package journalrepo

import (
	"time"

	"dashboard/internal/core/domain/model/journal"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// EntryDTO is the row layout of journal_entries. Statuses are stored as their
// wire strings so the table reads without the application.
type EntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	FlightID   uuid.UUID `gorm:"type:uuid;index"`
	OrderID    int64     `gorm:"index"`
	Action     string    `gorm:"type:varchar(32)"`
	FromStatus string    `gorm:"type:varchar(16)"`
	ToStatus   string    `gorm:"type:varchar(16)"`
	DriverID   *int64
	Outcome    string    `gorm:"type:varchar(16)"`
	Error      string    `gorm:"type:text"`
	RecordedAt time.Time `gorm:"index"`
}

func (EntryDTO) TableName() string {
	return "journal_entries"
}

func fromDomain(e journal.Entry) EntryDTO {
	var driverID *int64
	if e.DriverID != nil {
		id := e.DriverID.Int64()
		driverID = &id
	}

	return EntryDTO{
		ID:         e.ID.Bytes(),
		FlightID:   e.FlightID.Bytes(),
		OrderID:    e.OrderID.Int64(),
		Action:     string(e.Action),
		FromStatus: e.FromStatus.String(),
		ToStatus:   e.ToStatus.String(),
		DriverID:   driverID,
		Outcome:    string(e.Outcome),
		Error:      e.Error,
		RecordedAt: e.RecordedAt,
	}
}

func toDomain(dto EntryDTO) (journal.Entry, error) {
	id, err := kernel.UUIDFromString(dto.ID.String())
	if err != nil {
		return journal.Entry{}, err
	}
	flightID, err := kernel.UUIDFromString(dto.FlightID.String())
	if err != nil {
		return journal.Entry{}, err
	}
	from, err := order.ParseStatus(dto.FromStatus)
	if err != nil {
		return journal.Entry{}, err
	}
	to, err := order.ParseStatus(dto.ToStatus)
	if err != nil {
		return journal.Entry{}, err
	}

	var driverID *kernel.ID
	if dto.DriverID != nil {
		d := kernel.ID(*dto.DriverID)
		driverID = &d
	}

	return journal.Entry{
		ID:         id,
		FlightID:   flightID,
		OrderID:    kernel.ID(dto.OrderID),
		Action:     journal.Action(dto.Action),
		FromStatus: from,
		ToStatus:   to,
		DriverID:   driverID,
		Outcome:    journal.Outcome(dto.Outcome),
		Error:      dto.Error,
		RecordedAt: dto.RecordedAt,
	}, nil
}
