package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sleepitron/sleepitron/internal/domain"
	"gorm.io/gorm"
)

type PersonalityIntervalRepository interface {
	Create(ctx context.Context, interval *domain.PersonalityInterval) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PersonalityInterval, error)
	Update(ctx context.Context, interval *domain.PersonalityInterval) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type personalityIntervalRepository struct {
	db *gorm.DB
}

func NewPersonalityIntervalRepository(db *gorm.DB) PersonalityIntervalRepository {
	return &personalityIntervalRepository{db: db}
}

func (r *personalityIntervalRepository) Create(ctx context.Context, interval *domain.PersonalityInterval) error {
	return r.db.WithContext(ctx).Create(interval).Error
}

func (r *personalityIntervalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PersonalityInterval, error) {
	var interval domain.PersonalityInterval
	err := r.db.WithContext(ctx).First(&interval, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &interval, nil
}

func (r *personalityIntervalRepository) Update(ctx context.Context, interval *domain.PersonalityInterval) error {
	return r.db.WithContext(ctx).Save(interval).Error
}

func (r *personalityIntervalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.PersonalityInterval{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
