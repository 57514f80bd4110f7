package domain

import "github.com/google/uuid"

// AnalyticsWindow is the resolved date window an analytics result covers.
// @Description Inclusive calendar-date window.
type AnalyticsWindow struct {
	// First date of the window (YYYY-MM-DD, inclusive)
	From string `json:"from" example:"2024-02-01"`
	// Last date of the window (YYYY-MM-DD, inclusive)
	To string `json:"to" example:"2024-03-01"`
}

// PersonalityCount is one slice of the personality distribution.
type PersonalityCount struct {
	// Personality label
	Personality Personality `json:"personality" example:"宇辰"`
	// Number of intervals tagged with the label inside the window
	Count int `json:"count" example:"4"`
}

// AnalyticsSummaryResponse carries the aggregate statistics for a window.
// @Description Summary statistics over the sleep records in a date window.
type AnalyticsSummaryResponse struct {
	// Resolved window
	Window AnalyticsWindow `json:"window"`
	// Number of sleep records in the window
	RecordCount int `json:"record_count" example:"28"`
	// Mean quality rating; 0 when the window holds no records
	AverageQuality float64 `json:"average_quality" example:"7.2"`
	// Mean sleep duration in minutes; 0 when the window holds no records
	AverageDurationMinutes float64 `json:"average_duration_minutes" example:"438.5"`
	// Human-readable average duration
	AverageDurationLabel string `json:"average_duration_label" example:"7小時18分鐘"`
	// Most frequent personality label, or 無數據 when no intervals exist
	ModalPersonality string `json:"modal_personality" example:"宇辰"`
	// Occurrence count per personality label (labels with zero occurrences omitted)
	PersonalityDistribution []PersonalityCount `json:"personality_distribution"`
}

// SleepSegment is one visual chart segment: a single sleep session within
// its calendar-date bucket.
type SleepSegment struct {
	// Owning sleep record
	ID uuid.UUID `json:"id"`
	// Clock time of falling asleep
	SleepTime string `json:"sleep_time" example:"23:00"`
	// Clock time of waking up
	WakeTime string `json:"wake_time" example:"07:00"`
	// Segment length in hours, one decimal place
	DurationHours float64 `json:"duration_hours" example:"8.0"`
	// Segment length in whole minutes
	DurationMinutes int `json:"duration_minutes" example:"480"`
	// Human-readable segment length
	Label string `json:"label" example:"8小時"`
	// Display color, assigned by segment index within the date
	Color string `json:"color" example:"#4299e1"`
}

// DateBucket groups the sleep records sharing one calendar date.
// @Description Per-date bucket for chart and accordion display.
type DateBucket struct {
	// Literal record date (YYYY-MM-DD)
	Date string `json:"date" example:"2024-03-01"`
	// Short display label (MM/dd)
	Label string `json:"label" example:"03/01"`
	// Member records ordered by sleep time ascending
	Records []SleepRecordResponse `json:"records"`
	// One chart segment per member record, same order
	Segments []SleepSegment `json:"segments"`
	// Total sleep for the date in hours, one decimal place
	TotalHours float64 `json:"total_hours" example:"8.5"`
}

// DurationChartResponse is the response body for the duration chart endpoint.
// @Description Per-date sleep duration buckets, oldest first.
type DurationChartResponse struct {
	Window  AnalyticsWindow `json:"window"`
	Buckets []DateBucket    `json:"buckets"`
}

// QualityPoint is one point of the quality trend series.
type QualityPoint struct {
	Date            string `json:"date" example:"2024-03-01"`
	Quality         int    `json:"quality" example:"7"`
	DurationMinutes int    `json:"duration_minutes" example:"465"`
}

// QualityChartResponse is the response body for the quality chart endpoint.
// @Description Per-record quality trend, oldest first.
type QualityChartResponse struct {
	Window AnalyticsWindow `json:"window"`
	Points []QualityPoint  `json:"points"`
}

// InsightsContext is the aggregate data handed to the LLM.
type InsightsContext struct {
	History AnalyticsSummaryResponse `json:"history"`
	Recent  AnalyticsSummaryResponse `json:"recent"`
	// Date of the most recent doctor visit, empty if none recorded
	LastDoctorVisit string `json:"last_doctor_visit,omitempty"`
	// Date of the next scheduled follow-up, empty if none
	NextFollowUp string `json:"next_follow_up,omitempty"`
}

// LLMInsightsOutput is the structured answer produced by the LLM.
// @Description LLM-generated narrative over the computed statistics.
type LLMInsightsOutput struct {
	// Short prose summary of the period
	Summary string `json:"summary"`
	// Bullet-point observations about patterns in the data
	Observations []string `json:"observations"`
	// Concrete non-medical habit suggestions
	Guidance []string `json:"guidance"`
}

// InsightsResponse is the response body for the insights endpoint.
// @Description Generated insights plus the metrics they were derived from.
type InsightsResponse struct {
	Insights LLMInsightsOutput `json:"insights"`
	Metrics  InsightsContext   `json:"metrics"`
}
