package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sleepitron/sleepitron/internal/domain"
)

// MockSleepRecordRepository is a mock implementation of SleepRecordRepository
type MockSleepRecordRepository struct {
	records    map[uuid.UUID]*domain.SleepRecord
	listResult []domain.SleepRecord
	setEdited  []uuid.UUID
	err        error
}

func NewMockSleepRecordRepository() *MockSleepRecordRepository {
	return &MockSleepRecordRepository{
		records: make(map[uuid.UUID]*domain.SleepRecord),
	}
}

func (m *MockSleepRecordRepository) Create(ctx context.Context, record *domain.SleepRecord) error {
	if m.err != nil {
		return m.err
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.CreatedAt = time.Now()
	m.records[record.ID] = record
	return nil
}

func (m *MockSleepRecordRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	record, ok := m.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *record
	return &copied, nil
}

func (m *MockSleepRecordRepository) List(ctx context.Context, filter domain.SleepRecordFilter) ([]domain.SleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]domain.SleepRecord, len(m.listResult))
	copy(result, m.listResult)
	return result, nil
}

func (m *MockSleepRecordRepository) ListAll(ctx context.Context) ([]domain.SleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]domain.SleepRecord, len(m.listResult))
	copy(result, m.listResult)
	return result, nil
}

func (m *MockSleepRecordRepository) Update(ctx context.Context, record *domain.SleepRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records[record.ID] = record
	return nil
}

func (m *MockSleepRecordRepository) SetEdited(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	record, ok := m.records[id]
	if !ok {
		return domain.ErrNotFound
	}
	record.Edited = true
	m.setEdited = append(m.setEdited, id)
	return nil
}

func (m *MockSleepRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.records, id)
	return nil
}

// MockPersonalityIntervalRepository is a mock implementation of PersonalityIntervalRepository
type MockPersonalityIntervalRepository struct {
	intervals map[uuid.UUID]*domain.PersonalityInterval
	err       error
}

func NewMockPersonalityIntervalRepository() *MockPersonalityIntervalRepository {
	return &MockPersonalityIntervalRepository{
		intervals: make(map[uuid.UUID]*domain.PersonalityInterval),
	}
}

func (m *MockPersonalityIntervalRepository) Create(ctx context.Context, interval *domain.PersonalityInterval) error {
	if m.err != nil {
		return m.err
	}
	if interval.ID == uuid.Nil {
		interval.ID = uuid.New()
	}
	m.intervals[interval.ID] = interval
	return nil
}

func (m *MockPersonalityIntervalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PersonalityInterval, error) {
	if m.err != nil {
		return nil, m.err
	}
	interval, ok := m.intervals[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *interval
	return &copied, nil
}

func (m *MockPersonalityIntervalRepository) Update(ctx context.Context, interval *domain.PersonalityInterval) error {
	if m.err != nil {
		return m.err
	}
	m.intervals[interval.ID] = interval
	return nil
}

func (m *MockPersonalityIntervalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.intervals[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.intervals, id)
	return nil
}

// MockDoctorVisitRepository is a mock implementation of DoctorVisitRepository
type MockDoctorVisitRepository struct {
	visits     map[uuid.UUID]*domain.DoctorVisit
	listResult []domain.DoctorVisit
	err        error
}

func NewMockDoctorVisitRepository() *MockDoctorVisitRepository {
	return &MockDoctorVisitRepository{
		visits: make(map[uuid.UUID]*domain.DoctorVisit),
	}
}

func (m *MockDoctorVisitRepository) Create(ctx context.Context, visit *domain.DoctorVisit) error {
	if m.err != nil {
		return m.err
	}
	if visit.ID == uuid.Nil {
		visit.ID = uuid.New()
	}
	visit.CreatedAt = time.Now()
	m.visits[visit.ID] = visit
	return nil
}

func (m *MockDoctorVisitRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.DoctorVisit, error) {
	if m.err != nil {
		return nil, m.err
	}
	visit, ok := m.visits[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *visit
	return &copied, nil
}

func (m *MockDoctorVisitRepository) List(ctx context.Context, filter domain.DoctorVisitFilter) ([]domain.DoctorVisit, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]domain.DoctorVisit, len(m.listResult))
	copy(result, m.listResult)
	return result, nil
}

func (m *MockDoctorVisitRepository) ListAll(ctx context.Context) ([]domain.DoctorVisit, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]domain.DoctorVisit, len(m.listResult))
	copy(result, m.listResult)
	return result, nil
}

func (m *MockDoctorVisitRepository) Update(ctx context.Context, visit *domain.DoctorVisit) error {
	if m.err != nil {
		return m.err
	}
	m.visits[visit.ID] = visit
	return nil
}

func (m *MockDoctorVisitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.visits[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.visits, id)
	return nil
}

// MockInsightsLLM is a mock implementation of llm.InsightsLLM
type MockInsightsLLM struct {
	output  *domain.LLMInsightsOutput
	lastCtx *domain.InsightsContext
	err     error
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	m.lastCtx = insightsCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func personalityPtr(p domain.Personality) *domain.Personality {
	return &p
}
