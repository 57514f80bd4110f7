package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sleepitron/sleepitron/internal/domain"
	"github.com/sleepitron/sleepitron/internal/repository"
)

type DoctorVisitService interface {
	Create(ctx context.Context, req *domain.CreateDoctorVisitRequest) (*domain.DoctorVisitResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DoctorVisitResponse, error)
	List(ctx context.Context, filter domain.DoctorVisitFilter) ([]domain.DoctorVisitResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *domain.UpdateDoctorVisitRequest) (*domain.DoctorVisitResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type doctorVisitService struct {
	repo repository.DoctorVisitRepository
}

func NewDoctorVisitService(repo repository.DoctorVisitRepository) DoctorVisitService {
	return &doctorVisitService{repo: repo}
}

func (s *doctorVisitService) Create(ctx context.Context, req *domain.CreateDoctorVisitRequest) (*domain.DoctorVisitResponse, error) {
	visit := &domain.DoctorVisit{
		Date:          req.Date,
		Notes:         req.Notes,
		Prescriptions: req.Prescriptions,
		FollowUpDate:  req.FollowUpDate,
	}

	if err := s.repo.Create(ctx, visit); err != nil {
		return nil, err
	}

	resp := visit.ToResponse()
	return &resp, nil
}

func (s *doctorVisitService) GetByID(ctx context.Context, id uuid.UUID) (*domain.DoctorVisitResponse, error) {
	visit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := visit.ToResponse()
	return &resp, nil
}

func (s *doctorVisitService) List(ctx context.Context, filter domain.DoctorVisitFilter) ([]domain.DoctorVisitResponse, error) {
	visits, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.DoctorVisitResponse, len(visits))
	for i, visit := range visits {
		responses[i] = visit.ToResponse()
	}
	return responses, nil
}

func (s *doctorVisitService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateDoctorVisitRequest) (*domain.DoctorVisitResponse, error) {
	visit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		visit.Date = *req.Date
	}
	if req.Notes != nil {
		visit.Notes = *req.Notes
	}
	if req.Prescriptions != nil {
		visit.Prescriptions = *req.Prescriptions
	}
	if req.FollowUpDate != nil {
		visit.FollowUpDate = req.FollowUpDate
	}

	if err := s.repo.Update(ctx, visit); err != nil {
		return nil, err
	}

	resp := visit.ToResponse()
	return &resp, nil
}

func (s *doctorVisitService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
