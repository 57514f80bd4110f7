package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/sleepitron/sleepitron/internal/analytics"
	"github.com/sleepitron/sleepitron/internal/domain"
	"github.com/sleepitron/sleepitron/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultWindowDays is the window shown on first load of the analytics view.
const DefaultWindowDays = 30

// AnalyticsQuery selects the date window an analytics request covers.
// Precedence: SinceLastVisit, then an explicit From/To pair, then Days.
type AnalyticsQuery struct {
	Days           int
	From           string
	To             string
	SinceLastVisit bool
}

// AnalyticsService resolves a date window, fetches the records inside it,
// and runs the pure computation core over them.
type AnalyticsService interface {
	Summary(ctx context.Context, q AnalyticsQuery) (*domain.AnalyticsSummaryResponse, error)
	DurationChart(ctx context.Context, q AnalyticsQuery) (*domain.DurationChartResponse, error)
	QualityChart(ctx context.Context, q AnalyticsQuery) (*domain.QualityChartResponse, error)
}

type analyticsService struct {
	recordRepo repository.SleepRecordRepository
	visitRepo  repository.DoctorVisitRepository
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(recordRepo repository.SleepRecordRepository, visitRepo repository.DoctorVisitRepository) AnalyticsService {
	return &analyticsService{
		recordRepo: recordRepo,
		visitRepo:  visitRepo,
	}
}

func (s *analyticsService) Summary(ctx context.Context, q AnalyticsQuery) (*domain.AnalyticsSummaryResponse, error) {
	tracer := otel.Tracer("sleepitron-api/analytics")
	ctx, span := tracer.Start(ctx, "AnalyticsService.Summary")
	defer span.End()

	window, records, err := s.recordsInWindow(ctx, q)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.String("window.from", window.Window().From),
		attribute.String("window.to", window.Window().To),
		attribute.Int("records.count", len(records)),
	)

	avgDuration := analytics.AverageDuration(records)

	result := &domain.AnalyticsSummaryResponse{
		Window:                  window.Window(),
		RecordCount:             len(records),
		AverageQuality:          round2(analytics.AverageQuality(records)),
		AverageDurationMinutes:  round2(avgDuration),
		AverageDurationLabel:    analytics.FormatDuration(int(math.Round(avgDuration))),
		ModalPersonality:        analytics.ModalPersonality(records),
		PersonalityDistribution: analytics.PersonalityDistribution(records),
	}

	// Attach output payload for Langfuse
	if outputJSON, err := json.Marshal(result); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return result, nil
}

func (s *analyticsService) DurationChart(ctx context.Context, q AnalyticsQuery) (*domain.DurationChartResponse, error) {
	tracer := otel.Tracer("sleepitron-api/analytics")
	ctx, span := tracer.Start(ctx, "AnalyticsService.DurationChart",
		trace.WithAttributes(attribute.Int("query.days", q.Days)),
	)
	defer span.End()

	window, records, err := s.recordsInWindow(ctx, q)
	if err != nil {
		return nil, err
	}

	return &domain.DurationChartResponse{
		Window:  window.Window(),
		Buckets: analytics.GroupByDate(records),
	}, nil
}

func (s *analyticsService) QualityChart(ctx context.Context, q AnalyticsQuery) (*domain.QualityChartResponse, error) {
	tracer := otel.Tracer("sleepitron-api/analytics")
	ctx, span := tracer.Start(ctx, "AnalyticsService.QualityChart")
	defer span.End()

	window, records, err := s.recordsInWindow(ctx, q)
	if err != nil {
		return nil, err
	}

	return &domain.QualityChartResponse{
		Window: window.Window(),
		Points: analytics.QualitySeries(records),
	}, nil
}

// recordsInWindow resolves the query to a concrete range and returns the
// records falling inside it.
func (s *analyticsService) recordsInWindow(ctx context.Context, q AnalyticsQuery) (analytics.DateRange, []domain.SleepRecord, error) {
	window, err := s.resolveRange(ctx, q)
	if err != nil {
		return analytics.DateRange{}, nil, err
	}

	records, err := s.recordRepo.ListAll(ctx)
	if err != nil {
		return analytics.DateRange{}, nil, err
	}

	return window, analytics.FilterByRange(records, window), nil
}

func (s *analyticsService) resolveRange(ctx context.Context, q AnalyticsQuery) (analytics.DateRange, error) {
	if q.SinceLastVisit {
		visits, err := s.visitRepo.ListAll(ctx)
		if err != nil {
			return analytics.DateRange{}, err
		}
		window, ok := analytics.SinceLastVisitRange(visits)
		if !ok {
			return analytics.DateRange{}, domain.ErrNoDoctorVisits
		}
		return window, nil
	}

	if q.From != "" || q.To != "" {
		start, err := time.Parse(analytics.DateLayout, q.From)
		if err != nil {
			return analytics.DateRange{}, domain.ErrInvalidInput
		}
		end, err := time.Parse(analytics.DateLayout, q.To)
		if err != nil {
			return analytics.DateRange{}, domain.ErrInvalidInput
		}
		if end.Before(start) {
			return analytics.DateRange{}, domain.ErrInvalidInput
		}
		return analytics.DateRange{Start: start, End: end}, nil
	}

	days := q.Days
	if days <= 0 {
		days = DefaultWindowDays
	}
	return analytics.LastNDaysRange(days), nil
}

// round2 rounds to two decimal places for display.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
