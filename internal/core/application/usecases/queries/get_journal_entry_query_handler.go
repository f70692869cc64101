package queries

import (
	"context"

	"dashboard/internal/core/ports"
)

// GetJournalEntryQueryHandler loads single entries through the journal repository.
type GetJournalEntryQueryHandler struct {
	repo ports.JournalRepository
}

// NewGetJournalEntryQueryHandler creates the handler. A nil repo disables the journal.
func NewGetJournalEntryQueryHandler(repo ports.JournalRepository) GetJournalEntryQueryHandler {
	return GetJournalEntryQueryHandler{repo: repo}
}

func (h GetJournalEntryQueryHandler) Handle(ctx context.Context, query GetJournalEntryQuery) (GetJournalQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetJournalQueryResponse{}, err
	}
	if h.repo == nil {
		return GetJournalQueryResponse{}, ErrJournalDisabled
	}

	entry, err := h.repo.Get(ctx, query.ID())
	if err != nil {
		return GetJournalQueryResponse{}, err
	}

	return GetJournalQueryResponse{
		ID:         entry.ID,
		FlightID:   entry.FlightID,
		OrderID:    entry.OrderID,
		Action:     string(entry.Action),
		FromStatus: entry.FromStatus.String(),
		ToStatus:   entry.ToStatus.String(),
		DriverID:   entry.DriverID,
		Outcome:    string(entry.Outcome),
		Error:      entry.Error,
		RecordedAt: entry.RecordedAt,
	}, nil
}
