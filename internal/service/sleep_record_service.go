package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sleepitron/sleepitron/internal/analytics"
	"github.com/sleepitron/sleepitron/internal/domain"
	"github.com/sleepitron/sleepitron/internal/repository"
	"github.com/sleepitron/sleepitron/pkg/pagination"
)

type SleepRecordService interface {
	Create(ctx context.Context, req *domain.CreateSleepRecordRequest) (*domain.SleepRecordResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepRecordResponse, error)
	List(ctx context.Context, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *domain.UpdateSleepRecordRequest) (*domain.SleepRecordResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type sleepRecordService struct {
	repo repository.SleepRecordRepository
}

func NewSleepRecordService(repo repository.SleepRecordRepository) SleepRecordService {
	return &sleepRecordService{repo: repo}
}

func (s *sleepRecordService) Create(ctx context.Context, req *domain.CreateSleepRecordRequest) (*domain.SleepRecordResponse, error) {
	record := &domain.SleepRecord{
		Date:          req.Date,
		SleepTime:     req.SleepTime,
		WakeTime:      req.WakeTime,
		Quality:       req.Quality,
		Notes:         req.Notes,
		Medications:   req.Medications,
		Personalities: []domain.PersonalityInterval{},
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	resp := analytics.RecordResponse(*record)
	return &resp, nil
}

func (s *sleepRecordService) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepRecordResponse, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := analytics.RecordResponse(*record)
	return &resp, nil
}

func (s *sleepRecordService) List(ctx context.Context, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error) {
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(records) > limit

	// Trim to actual limit
	if hasMore {
		records = records[:limit]
	}

	response := &domain.SleepRecordListResponse{
		Data: make([]domain.SleepRecordResponse, len(records)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, record := range records {
		response.Data[i] = analytics.RecordResponse(record)
	}

	// Set next cursor if there are more results
	if hasMore && len(records) > 0 {
		lastRecord := records[len(records)-1]
		cursor := &pagination.Cursor{
			ID:   lastRecord.ID,
			Date: lastRecord.Date,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

// Update applies a partial patch: only provided fields change, and any
// successful patch marks the record edited for good.
func (s *sleepRecordService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateSleepRecordRequest) (*domain.SleepRecordResponse, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		record.Date = *req.Date
	}
	if req.SleepTime != nil {
		record.SleepTime = *req.SleepTime
	}
	if req.WakeTime != nil {
		record.WakeTime = *req.WakeTime
	}
	if req.Quality != nil {
		record.Quality = *req.Quality
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}
	if req.Medications != nil {
		record.Medications = *req.Medications
	}
	record.Edited = true

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}

	resp := analytics.RecordResponse(*record)
	return &resp, nil
}

// Delete removes a record; its personality intervals cascade with it.
func (s *sleepRecordService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
