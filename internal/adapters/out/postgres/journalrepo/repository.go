package journalrepo

import (
	"context"
	"errors"

	"dashboard/internal/core/domain/model/journal"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormJournalRepository implements ports.JournalRepository using GORM.
type GormJournalRepository struct {
	db *gorm.DB
}

func NewGormJournalRepository(db *gorm.DB) *GormJournalRepository {
	return &GormJournalRepository{db: db}
}

// Migrate creates or updates the journal table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&EntryDTO{})
}

// Add appends an entry.
func (r *GormJournalRepository) Add(ctx context.Context, entry journal.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an entry by ID.
func (r *GormJournalRepository) Get(ctx context.Context, id kernel.UUID) (journal.Entry, error) {
	if err := id.Validate(); err != nil {
		return journal.Entry{}, err
	}

	var dto EntryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return journal.Entry{}, errs.NewObjectNotFoundError("journal entry", id.String())
		}
		return journal.Entry{}, err
	}

	return toDomain(dto)
}
