package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sleepitron/sleepitron/internal/domain"
)

func TestInsightsService_Generate(t *testing.T) {
	recordRepo := NewMockSleepRecordRepository()
	visitRepo := NewMockDoctorVisitRepository()
	analyticsService := NewAnalyticsService(recordRepo, visitRepo)

	today := time.Now().Format("2006-01-02")
	recordRepo.listResult = []domain.SleepRecord{
		{ID: uuid.New(), Date: today, SleepTime: "23:00", WakeTime: "07:00", Quality: 7},
	}
	visitRepo.listResult = []domain.DoctorVisit{
		{ID: uuid.New(), Date: "2024-03-01", FollowUpDate: strPtr("2024-04-01")},
		{ID: uuid.New(), Date: "2024-01-15"},
	}

	llmMock := &MockInsightsLLM{
		output: &domain.LLMInsightsOutput{
			Summary:      "Sleep has been steady.",
			Observations: []string{"Average duration around 8 hours."},
			Guidance:     []string{"Keep a consistent bedtime."},
		},
	}

	svc := NewInsightsService(analyticsService, llmMock, visitRepo)

	resp, err := svc.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if resp.Insights.Summary != "Sleep has been steady." {
		t.Errorf("Generate() Summary = %q", resp.Insights.Summary)
	}
	if llmMock.lastCtx == nil {
		t.Fatal("Generate() did not pass a context to the LLM")
	}
	if llmMock.lastCtx.LastDoctorVisit != "2024-03-01" {
		t.Errorf("Generate() LastDoctorVisit = %q, want 2024-03-01", llmMock.lastCtx.LastDoctorVisit)
	}
	if llmMock.lastCtx.NextFollowUp != "2024-04-01" {
		t.Errorf("Generate() NextFollowUp = %q, want 2024-04-01", llmMock.lastCtx.NextFollowUp)
	}
	if resp.Metrics.History.RecordCount != 1 || resp.Metrics.Recent.RecordCount != 1 {
		t.Errorf("Generate() window counts = %d/%d, want 1/1",
			resp.Metrics.History.RecordCount, resp.Metrics.Recent.RecordCount)
	}
}

func TestInsightsService_Generate_LLMError(t *testing.T) {
	recordRepo := NewMockSleepRecordRepository()
	visitRepo := NewMockDoctorVisitRepository()
	analyticsService := NewAnalyticsService(recordRepo, visitRepo)

	wantErr := errors.New("llm down")
	svc := NewInsightsService(analyticsService, &MockInsightsLLM{err: wantErr}, visitRepo)

	if _, err := svc.Generate(context.Background()); !errors.Is(err, wantErr) {
		t.Errorf("Generate() error = %v, want %v", err, wantErr)
	}
}
