package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/sleepitron/sleepitron/internal/analytics"
	"github.com/sleepitron/sleepitron/internal/domain"
	"github.com/sleepitron/sleepitron/internal/llm"
	"github.com/sleepitron/sleepitron/internal/service"
	"github.com/sleepitron/sleepitron/pkg/problem"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
	insightsService  service.InsightsService
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService, insightsService service.InsightsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		insightsService:  insightsService,
	}
}

// Summary handles GET /v1/analytics/summary
// @Summary Aggregate sleep statistics
// @Description Averages and personality distribution for a date window. Select the window with days, an explicit from/to pair, or range=since-last-visit.
// @Tags analytics
// @Produce json
// @Param days query integer false "Window length ending today" default(30)
// @Param from query string false "Window start (YYYY-MM-DD, inclusive)" example(2024-03-01)
// @Param to query string false "Window end (YYYY-MM-DD, inclusive)" example(2024-03-31)
// @Param range query string false "Named window" Enums(since-last-visit)
// @Success 200 {object} domain.AnalyticsSummaryResponse
// @Failure 400 {object} problem.Problem "Invalid window"
// @Failure 422 {object} problem.Problem "Invalid query parameters or no doctor visits recorded"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	query, fieldErrors := parseAnalyticsQuery(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	summary, err := h.analyticsService.Summary(r.Context(), query)
	if err != nil {
		writeAnalyticsError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

// DurationChart handles GET /v1/analytics/duration-chart
// @Summary Per-date sleep duration buckets
// @Description Sleep sessions grouped by date, with per-segment hours and chart colors. Window selection works as for the summary endpoint.
// @Tags analytics
// @Produce json
// @Param days query integer false "Window length ending today" default(30)
// @Param from query string false "Window start (YYYY-MM-DD, inclusive)"
// @Param to query string false "Window end (YYYY-MM-DD, inclusive)"
// @Param range query string false "Named window" Enums(since-last-visit)
// @Success 200 {object} domain.DurationChartResponse
// @Failure 400 {object} problem.Problem "Invalid window"
// @Failure 422 {object} problem.Problem "Invalid query parameters or no doctor visits recorded"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /analytics/duration-chart [get]
func (h *AnalyticsHandler) DurationChart(w http.ResponseWriter, r *http.Request) {
	query, fieldErrors := parseAnalyticsQuery(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	chart, err := h.analyticsService.DurationChart(r.Context(), query)
	if err != nil {
		writeAnalyticsError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(chart)
}

// QualityChart handles GET /v1/analytics/quality-chart
// @Summary Sleep quality time series
// @Description Quality scores ordered by date and sleep time. Window selection works as for the summary endpoint.
// @Tags analytics
// @Produce json
// @Param days query integer false "Window length ending today" default(30)
// @Param from query string false "Window start (YYYY-MM-DD, inclusive)"
// @Param to query string false "Window end (YYYY-MM-DD, inclusive)"
// @Param range query string false "Named window" Enums(since-last-visit)
// @Success 200 {object} domain.QualityChartResponse
// @Failure 400 {object} problem.Problem "Invalid window"
// @Failure 422 {object} problem.Problem "Invalid query parameters or no doctor visits recorded"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /analytics/quality-chart [get]
func (h *AnalyticsHandler) QualityChart(w http.ResponseWriter, r *http.Request) {
	query, fieldErrors := parseAnalyticsQuery(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	chart, err := h.analyticsService.QualityChart(r.Context(), query)
	if err != nil {
		writeAnalyticsError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(chart)
}

// Insights handles GET /v1/analytics/insights
// @Summary AI-generated diary insights
// @Description Narrative summary, observations, and non-medical guidance computed from recent diary statistics.
// @Tags analytics
// @Produce json
// @Success 200 {object} domain.InsightsResponse
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 503 {object} problem.Problem "Insights service not configured"
// @Router /analytics/insights [get]
func (h *AnalyticsHandler) Insights(w http.ResponseWriter, r *http.Request) {
	insights, err := h.insightsService.Generate(r.Context())
	if err != nil {
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.ServiceUnavailable("Insights are not available: LLM service not configured").Write(w)
			return
		}
		problem.InternalError("Failed to generate insights").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(insights)
}

func parseAnalyticsQuery(r *http.Request) (service.AnalyticsQuery, []problem.FieldError) {
	var query service.AnalyticsQuery
	var fieldErrors []problem.FieldError

	if rangeStr := r.URL.Query().Get("range"); rangeStr != "" {
		if rangeStr != "since-last-visit" {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "range",
				Message: "must be 'since-last-visit'",
			})
		} else {
			query.SinceLastVisit = true
		}
	}

	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil || days < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "days",
				Message: "must be a positive integer",
			})
		} else {
			query.Days = days
		}
	}

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		if !validDate(fromStr) {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid calendar date (YYYY-MM-DD)",
			})
		} else {
			query.From = fromStr
		}
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		if !validDate(toStr) {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid calendar date (YYYY-MM-DD)",
			})
		} else {
			query.To = toStr
		}
	}

	// from and to travel together
	if (query.From == "") != (query.To == "") {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   "from",
			Message: "from and to must be provided together",
		})
	}

	if len(fieldErrors) > 0 {
		return query, fieldErrors
	}

	return query, nil
}

func writeAnalyticsError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNoDoctorVisits):
		problem.UnprocessableEntity("No doctor visits recorded; cannot resolve since-last-visit window").Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest("Invalid analytics window").Write(w)
	default:
		problem.InternalError("Failed to compute analytics").Write(w)
	}
}

func validDate(s string) bool {
	_, err := time.Parse(analytics.DateLayout, s)
	return err == nil
}
