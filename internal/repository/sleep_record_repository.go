package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sleepitron/sleepitron/internal/domain"
	"github.com/sleepitron/sleepitron/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SleepRecordRepository interface {
	Create(ctx context.Context, record *domain.SleepRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepRecord, error)
	List(ctx context.Context, filter domain.SleepRecordFilter) ([]domain.SleepRecord, error)
	ListAll(ctx context.Context) ([]domain.SleepRecord, error)
	Update(ctx context.Context, record *domain.SleepRecord) error
	SetEdited(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type sleepRecordRepository struct {
	db *gorm.DB
}

func NewSleepRecordRepository(db *gorm.DB) SleepRecordRepository {
	return &sleepRecordRepository{db: db}
}

func (r *sleepRecordRepository) Create(ctx context.Context, record *domain.SleepRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *sleepRecordRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepRecord, error) {
	var record domain.SleepRecord
	err := r.db.WithContext(ctx).Preload("Personalities").First(&record, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *sleepRecordRepository) List(ctx context.Context, filter domain.SleepRecordFilter) ([]domain.SleepRecord, error) {
	query := r.db.WithContext(ctx).
		Preload("Personalities").
		Order("date DESC, id DESC")

	// Zero-padded YYYY-MM-DD strings order lexicographically by date.
	if filter.From != "" {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("date <= ?", filter.To)
	}

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: records strictly after the cursor position.
			query = query.Where(
				"(date < ?) OR (date = ? AND id < ?)",
				cursor.Date, cursor.Date, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var records []domain.SleepRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *sleepRecordRepository) ListAll(ctx context.Context) ([]domain.SleepRecord, error) {
	var records []domain.SleepRecord
	err := r.db.WithContext(ctx).
		Preload("Personalities").
		Order("date ASC, sleep_time ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *sleepRecordRepository) Update(ctx context.Context, record *domain.SleepRecord) error {
	// Intervals are managed through their own repository; skip association
	// writes so a stale preloaded slice can never resurrect deleted rows.
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(record).Error
}

// SetEdited flips the edited flag without touching any other column; used
// when a personality interval belonging to the record is changed.
func (r *sleepRecordRepository) SetEdited(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&domain.SleepRecord{}).
		Where("id = ?", id).
		Update("edited", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a sleep record; its personality intervals go with it via
// the ON DELETE CASCADE constraint.
func (r *sleepRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.SleepRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
