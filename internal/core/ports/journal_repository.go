package ports

import (
	"context"

	"dashboard/internal/core/domain/model/journal"
	"dashboard/internal/core/domain/model/kernel"
)

// JournalRepository defines the persistence contract for settled requests.
type JournalRepository interface {
	// Add appends one entry. Entries are never updated.
	Add(ctx context.Context, entry journal.Entry) error
	// Get returns one entry or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (journal.Entry, error)
}
