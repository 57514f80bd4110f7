package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/sleepitron/sleepitron/internal/domain"
	"github.com/sleepitron/sleepitron/internal/service"
)

// MockSleepRecordService is a mock implementation of SleepRecordService
type MockSleepRecordService struct {
	createFunc func(ctx context.Context, req *domain.CreateSleepRecordRequest) (*domain.SleepRecordResponse, error)
	getFunc    func(ctx context.Context, id uuid.UUID) (*domain.SleepRecordResponse, error)
	listFunc   func(ctx context.Context, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error)
	updateFunc func(ctx context.Context, id uuid.UUID, req *domain.UpdateSleepRecordRequest) (*domain.SleepRecordResponse, error)
	deleteFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *MockSleepRecordService) Create(ctx context.Context, req *domain.CreateSleepRecordRequest) (*domain.SleepRecordResponse, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.SleepRecordResponse{
		ID:        uuid.New(),
		Date:      req.Date,
		SleepTime: req.SleepTime,
		WakeTime:  req.WakeTime,
		Quality:   req.Quality,
	}, nil
}

func (m *MockSleepRecordService) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepRecordResponse, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return &domain.SleepRecordResponse{ID: id, Date: "2024-03-01", SleepTime: "23:00", WakeTime: "07:00", Quality: 7}, nil
}

func (m *MockSleepRecordService) List(ctx context.Context, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return &domain.SleepRecordListResponse{
		Data:       []domain.SleepRecordResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockSleepRecordService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateSleepRecordRequest) (*domain.SleepRecordResponse, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, req)
	}
	return &domain.SleepRecordResponse{ID: id, Date: "2024-03-01", SleepTime: "23:00", WakeTime: "07:00", Quality: 7, Edited: true}, nil
}

func (m *MockSleepRecordService) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// MockPersonalityService is a mock implementation of PersonalityService
type MockPersonalityService struct {
	createFunc func(ctx context.Context, recordID uuid.UUID, req *domain.CreatePersonalityIntervalRequest) (*domain.PersonalityIntervalResponse, error)
	updateFunc func(ctx context.Context, id uuid.UUID, req *domain.UpdatePersonalityIntervalRequest) (*domain.PersonalityIntervalResponse, error)
	deleteFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *MockPersonalityService) Create(ctx context.Context, recordID uuid.UUID, req *domain.CreatePersonalityIntervalRequest) (*domain.PersonalityIntervalResponse, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, recordID, req)
	}
	return &domain.PersonalityIntervalResponse{
		ID:            uuid.New(),
		SleepRecordID: recordID,
		Personality:   req.Personality,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
	}, nil
}

func (m *MockPersonalityService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdatePersonalityIntervalRequest) (*domain.PersonalityIntervalResponse, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, req)
	}
	return &domain.PersonalityIntervalResponse{ID: id, Personality: domain.PersonalityYuChen, StartTime: "19:00", EndTime: "21:00"}, nil
}

func (m *MockPersonalityService) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// MockDoctorVisitService is a mock implementation of DoctorVisitService
type MockDoctorVisitService struct {
	createFunc func(ctx context.Context, req *domain.CreateDoctorVisitRequest) (*domain.DoctorVisitResponse, error)
	getFunc    func(ctx context.Context, id uuid.UUID) (*domain.DoctorVisitResponse, error)
	listFunc   func(ctx context.Context, filter domain.DoctorVisitFilter) ([]domain.DoctorVisitResponse, error)
	updateFunc func(ctx context.Context, id uuid.UUID, req *domain.UpdateDoctorVisitRequest) (*domain.DoctorVisitResponse, error)
	deleteFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *MockDoctorVisitService) Create(ctx context.Context, req *domain.CreateDoctorVisitRequest) (*domain.DoctorVisitResponse, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.DoctorVisitResponse{ID: uuid.New(), Date: req.Date}, nil
}

func (m *MockDoctorVisitService) GetByID(ctx context.Context, id uuid.UUID) (*domain.DoctorVisitResponse, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return &domain.DoctorVisitResponse{ID: id, Date: "2024-02-14"}, nil
}

func (m *MockDoctorVisitService) List(ctx context.Context, filter domain.DoctorVisitFilter) ([]domain.DoctorVisitResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return []domain.DoctorVisitResponse{}, nil
}

func (m *MockDoctorVisitService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateDoctorVisitRequest) (*domain.DoctorVisitResponse, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, req)
	}
	return &domain.DoctorVisitResponse{ID: id, Date: "2024-02-14"}, nil
}

func (m *MockDoctorVisitService) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// MockAnalyticsService is a mock implementation of AnalyticsService
type MockAnalyticsService struct {
	summaryFunc       func(ctx context.Context, q service.AnalyticsQuery) (*domain.AnalyticsSummaryResponse, error)
	durationChartFunc func(ctx context.Context, q service.AnalyticsQuery) (*domain.DurationChartResponse, error)
	qualityChartFunc  func(ctx context.Context, q service.AnalyticsQuery) (*domain.QualityChartResponse, error)
}

func (m *MockAnalyticsService) Summary(ctx context.Context, q service.AnalyticsQuery) (*domain.AnalyticsSummaryResponse, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx, q)
	}
	return &domain.AnalyticsSummaryResponse{}, nil
}

func (m *MockAnalyticsService) DurationChart(ctx context.Context, q service.AnalyticsQuery) (*domain.DurationChartResponse, error) {
	if m.durationChartFunc != nil {
		return m.durationChartFunc(ctx, q)
	}
	return &domain.DurationChartResponse{}, nil
}

func (m *MockAnalyticsService) QualityChart(ctx context.Context, q service.AnalyticsQuery) (*domain.QualityChartResponse, error) {
	if m.qualityChartFunc != nil {
		return m.qualityChartFunc(ctx, q)
	}
	return &domain.QualityChartResponse{}, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context) (*domain.InsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx)
	}
	return &domain.InsightsResponse{}, nil
}
