package queries

import (
	"errors"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/guard"
)

var (
	ErrGetJournalEntryQueryIsNotConstructed = errors.New(
		"GetJournalEntryQuery must be created via NewGetJournalEntryQuery constructor",
	)
)

// GetJournalEntryQuery reads one journal entry by its id.
type GetJournalEntryQuery struct {
	id kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetJournalEntryQuery(id kernel.UUID) (GetJournalEntryQuery, error) {
	if err := id.Validate(); err != nil {
		return GetJournalEntryQuery{}, err
	}
	return GetJournalEntryQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetJournalEntryQuery) Validate() error {
	return q.guard.Validate(ErrGetJournalEntryQueryIsNotConstructed)
}

func (q GetJournalEntryQuery) ID() kernel.UUID {
	return q.id
}
