package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sleepitron/sleepitron/internal/domain"
	"gorm.io/gorm"
)

type DoctorVisitRepository interface {
	Create(ctx context.Context, visit *domain.DoctorVisit) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DoctorVisit, error)
	List(ctx context.Context, filter domain.DoctorVisitFilter) ([]domain.DoctorVisit, error)
	ListAll(ctx context.Context) ([]domain.DoctorVisit, error)
	Update(ctx context.Context, visit *domain.DoctorVisit) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type doctorVisitRepository struct {
	db *gorm.DB
}

func NewDoctorVisitRepository(db *gorm.DB) DoctorVisitRepository {
	return &doctorVisitRepository{db: db}
}

func (r *doctorVisitRepository) Create(ctx context.Context, visit *domain.DoctorVisit) error {
	return r.db.WithContext(ctx).Create(visit).Error
}

func (r *doctorVisitRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.DoctorVisit, error) {
	var visit domain.DoctorVisit
	err := r.db.WithContext(ctx).First(&visit, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &visit, nil
}

func (r *doctorVisitRepository) List(ctx context.Context, filter domain.DoctorVisitFilter) ([]domain.DoctorVisit, error) {
	query := r.db.WithContext(ctx).Order("date DESC")

	if filter.From != "" {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("date <= ?", filter.To)
	}

	var visits []domain.DoctorVisit
	if err := query.Find(&visits).Error; err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *doctorVisitRepository) ListAll(ctx context.Context) ([]domain.DoctorVisit, error) {
	var visits []domain.DoctorVisit
	if err := r.db.WithContext(ctx).Order("date DESC").Find(&visits).Error; err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *doctorVisitRepository) Update(ctx context.Context, visit *domain.DoctorVisit) error {
	return r.db.WithContext(ctx).Save(visit).Error
}

func (r *doctorVisitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.DoctorVisit{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
