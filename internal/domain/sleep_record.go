package domain

import (
	"time"

	"github.com/google/uuid"
)

type SleepRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Date        string    `gorm:"type:varchar(10);not null;index:idx_sleep_records_date" json:"date"`
	SleepTime   string    `gorm:"type:varchar(5);not null" json:"sleep_time"`
	WakeTime    string    `gorm:"type:varchar(5);not null" json:"wake_time"`
	Quality     int       `gorm:"type:smallint;not null" json:"quality"`
	Notes       string    `gorm:"type:text" json:"notes"`
	Medications string    `gorm:"type:text" json:"medications"`
	Edited      bool      `gorm:"not null;default:false" json:"edited"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	Personalities []PersonalityInterval `gorm:"foreignKey:SleepRecordID;constraint:OnDelete:CASCADE" json:"personalities"`
}

func (SleepRecord) TableName() string {
	return "sleep_records"
}

// CreateSleepRecordRequest is the request body for logging a sleep session.
// @Description Request payload for recording a sleep session.
type CreateSleepRecordRequest struct {
	// Calendar date the person went to sleep (YYYY-MM-DD)
	Date string `json:"date" validate:"required,caldate" example:"2024-03-01"`
	// Local clock time of falling asleep (HH:MM, 24-hour)
	SleepTime string `json:"sleep_time" validate:"required,clock" example:"23:30"`
	// Local clock time of waking up (HH:MM, 24-hour); earlier than sleep_time means next day
	WakeTime string `json:"wake_time" validate:"required,clock" example:"07:15"`
	// Sleep quality rating from 1 (poor) to 10 (excellent)
	Quality int `json:"quality" validate:"required,min=1,max=10" example:"7" minimum:"1" maximum:"10"`
	// Free-text notes
	Notes string `json:"notes" example:"fell asleep quickly"`
	// Medications taken before sleep (optional)
	Medications string `json:"medications,omitempty" example:"melatonin 3mg"`
}

// UpdateSleepRecordRequest is the partial-patch body for a sleep record.
// Only provided fields are changed; any successful patch marks the record edited.
// @Description Partial update payload; omitted fields keep their values.
type UpdateSleepRecordRequest struct {
	Date        *string `json:"date,omitempty" validate:"omitempty,caldate" example:"2024-03-01"`
	SleepTime   *string `json:"sleep_time,omitempty" validate:"omitempty,clock" example:"22:45"`
	WakeTime    *string `json:"wake_time,omitempty" validate:"omitempty,clock" example:"06:30"`
	Quality     *int    `json:"quality,omitempty" validate:"omitempty,min=1,max=10" example:"8"`
	Notes       *string `json:"notes,omitempty"`
	Medications *string `json:"medications,omitempty"`
}

// SleepRecordResponse is the response body for sleep record endpoints.
// @Description Sleep session record with computed duration.
type SleepRecordResponse struct {
	// Unique sleep record identifier
	ID uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Calendar date of falling asleep (YYYY-MM-DD)
	Date string `json:"date" example:"2024-03-01"`
	// Clock time of falling asleep
	SleepTime string `json:"sleep_time" example:"23:30"`
	// Clock time of waking up
	WakeTime string `json:"wake_time" example:"07:15"`
	// Sleep quality (1-10)
	Quality int `json:"quality" example:"7"`
	// Free-text notes
	Notes string `json:"notes"`
	// Medications taken before sleep
	Medications string `json:"medications,omitempty"`
	// True once the record has been updated after creation
	Edited bool `json:"edited" example:"false"`
	// Record creation timestamp
	CreatedAt time.Time `json:"created_at"`
	// Elapsed sleep minutes, overnight rollover applied
	DurationMinutes int `json:"duration_minutes" example:"465"`
	// Human-readable duration, e.g. 7小時45分鐘
	DurationLabel string `json:"duration_label" example:"7小時45分鐘"`
	// Personality intervals attached to this record
	Personalities []PersonalityIntervalResponse `json:"personalities"`
}

func (s *SleepRecord) ToResponse() SleepRecordResponse {
	personalities := make([]PersonalityIntervalResponse, len(s.Personalities))
	for i, p := range s.Personalities {
		personalities[i] = p.ToResponse()
	}

	return SleepRecordResponse{
		ID:            s.ID,
		Date:          s.Date,
		SleepTime:     s.SleepTime,
		WakeTime:      s.WakeTime,
		Quality:       s.Quality,
		Notes:         s.Notes,
		Medications:   s.Medications,
		Edited:        s.Edited,
		CreatedAt:     s.CreatedAt,
		Personalities: personalities,
	}
}

// SleepRecordListResponse is the response body for listing sleep records.
// @Description Paginated list of sleep records.
type SleepRecordListResponse struct {
	// Array of sleep records
	Data []SleepRecordResponse `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// SleepRecordFilter contains filter parameters for listing sleep records
type SleepRecordFilter struct {
	From   string
	To     string
	Limit  int
	Cursor string
}
