package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sleepitron/sleepitron/internal/domain"
	"github.com/sleepitron/sleepitron/internal/repository"
)

type PersonalityService interface {
	Create(ctx context.Context, recordID uuid.UUID, req *domain.CreatePersonalityIntervalRequest) (*domain.PersonalityIntervalResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *domain.UpdatePersonalityIntervalRequest) (*domain.PersonalityIntervalResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type personalityService struct {
	repo       repository.PersonalityIntervalRepository
	recordRepo repository.SleepRecordRepository
}

func NewPersonalityService(repo repository.PersonalityIntervalRepository, recordRepo repository.SleepRecordRepository) PersonalityService {
	return &personalityService{
		repo:       repo,
		recordRepo: recordRepo,
	}
}

// Create attaches an interval to an existing sleep record. Touching the
// intervals of a record marks the record edited.
func (s *personalityService) Create(ctx context.Context, recordID uuid.UUID, req *domain.CreatePersonalityIntervalRequest) (*domain.PersonalityIntervalResponse, error) {
	// Confirm the owning record exists
	if _, err := s.recordRepo.GetByID(ctx, recordID); err != nil {
		return nil, err
	}

	interval := &domain.PersonalityInterval{
		SleepRecordID: recordID,
		Personality:   req.Personality,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Notes:         req.Notes,
	}

	if err := s.repo.Create(ctx, interval); err != nil {
		return nil, err
	}

	if err := s.recordRepo.SetEdited(ctx, recordID); err != nil {
		return nil, err
	}

	resp := interval.ToResponse()
	return &resp, nil
}

func (s *personalityService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdatePersonalityIntervalRequest) (*domain.PersonalityIntervalResponse, error) {
	interval, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Personality != nil {
		interval.Personality = *req.Personality
	}
	if req.StartTime != nil {
		interval.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		interval.EndTime = *req.EndTime
	}
	if req.Notes != nil {
		interval.Notes = *req.Notes
	}

	if err := s.repo.Update(ctx, interval); err != nil {
		return nil, err
	}

	if err := s.recordRepo.SetEdited(ctx, interval.SleepRecordID); err != nil {
		return nil, err
	}

	resp := interval.ToResponse()
	return &resp, nil
}

func (s *personalityService) Delete(ctx context.Context, id uuid.UUID) error {
	interval, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	return s.recordRepo.SetEdited(ctx, interval.SleepRecordID)
}
