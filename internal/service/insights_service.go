package service

import (
	"context"

	"github.com/sleepitron/sleepitron/internal/domain"
	"github.com/sleepitron/sleepitron/internal/llm"
	"github.com/sleepitron/sleepitron/internal/repository"
)

const (
	// Window sizes for insights
	HistoryWindowDays = 30
	RecentWindowDays  = 7
)

// InsightsService generates narrative insights over the computed statistics.
type InsightsService interface {
	// Generate creates diary insights for the configured windows.
	Generate(ctx context.Context) (*domain.InsightsResponse, error)
}

type insightsService struct {
	analyticsService AnalyticsService
	llmClient        llm.InsightsLLM
	visitRepo        repository.DoctorVisitRepository
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(
	analyticsService AnalyticsService,
	llmClient llm.InsightsLLM,
	visitRepo repository.DoctorVisitRepository,
) InsightsService {
	return &insightsService{
		analyticsService: analyticsService,
		llmClient:        llmClient,
		visitRepo:        visitRepo,
	}
}

func (s *insightsService) Generate(ctx context.Context) (*domain.InsightsResponse, error) {
	// Compute history statistics (~30 days)
	history, err := s.analyticsService.Summary(ctx, AnalyticsQuery{Days: HistoryWindowDays})
	if err != nil {
		return nil, err
	}

	// Compute recent statistics (~7 days)
	recent, err := s.analyticsService.Summary(ctx, AnalyticsQuery{Days: RecentWindowDays})
	if err != nil {
		return nil, err
	}

	insightsCtx := &domain.InsightsContext{
		History: *history,
		Recent:  *recent,
	}

	// Visits are ordered newest first; the first carries the follow-up date.
	visits, err := s.visitRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(visits) > 0 {
		insightsCtx.LastDoctorVisit = visits[0].Date
		if visits[0].FollowUpDate != nil {
			insightsCtx.NextFollowUp = *visits[0].FollowUpDate
		}
	}

	// Generate LLM insights
	llmOutput, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	return &domain.InsightsResponse{
		Insights: *llmOutput,
		Metrics:  *insightsCtx,
	}, nil
}
