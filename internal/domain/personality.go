package domain

import "github.com/google/uuid"

// Personality is one of the fixed set of named states an interval can be
// tagged with.
// @Description Closed set of personality labels: 宇辰, 空, 貓咪, 欣怡.
type Personality string

const (
	PersonalityYuChen Personality = "宇辰"
	PersonalityKong   Personality = "空"
	PersonalityMaoMi  Personality = "貓咪"
	PersonalityXinYi  Personality = "欣怡"
)

// AllPersonalities lists every valid label in canonical display order.
var AllPersonalities = []Personality{
	PersonalityYuChen,
	PersonalityKong,
	PersonalityMaoMi,
	PersonalityXinYi,
}

// Valid reports whether p is one of the known labels.
func (p Personality) Valid() bool {
	for _, known := range AllPersonalities {
		if p == known {
			return true
		}
	}
	return false
}

// PersonalityInterval is a labeled sub-period attached to a sleep record.
// Interval times describe waking-state labeling around the sleep window, so
// no ordering relative to the record's sleep/wake times is enforced.
type PersonalityInterval struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SleepRecordID uuid.UUID   `gorm:"type:uuid;not null;index:idx_personality_intervals_record" json:"sleep_record_id"`
	Personality   Personality `gorm:"type:varchar(16);not null" json:"personality"`
	StartTime     string      `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime       string      `gorm:"type:varchar(5);not null" json:"end_time"`
	Notes         string      `gorm:"type:text" json:"notes"`

	// Associations
	SleepRecord SleepRecord `gorm:"foreignKey:SleepRecordID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PersonalityInterval) TableName() string {
	return "personality_intervals"
}

// CreatePersonalityIntervalRequest is the request body for attaching an
// interval to a sleep record.
// @Description Request payload for tagging a personality interval.
type CreatePersonalityIntervalRequest struct {
	// Personality label
	Personality Personality `json:"personality" validate:"required,oneof=宇辰 空 貓咪 欣怡" example:"宇辰" enums:"宇辰,空,貓咪,欣怡"`
	// Interval start clock time (HH:MM)
	StartTime string `json:"start_time" validate:"required,clock" example:"19:00"`
	// Interval end clock time (HH:MM)
	EndTime string `json:"end_time" validate:"required,clock" example:"22:00"`
	// Free-text notes
	Notes string `json:"notes" example:"情緒穩定"`
}

// UpdatePersonalityIntervalRequest is the partial-patch body for an interval.
// Touching an interval marks the owning sleep record edited.
// @Description Partial update payload; omitted fields keep their values.
type UpdatePersonalityIntervalRequest struct {
	Personality *Personality `json:"personality,omitempty" validate:"omitempty,oneof=宇辰 空 貓咪 欣怡"`
	StartTime   *string      `json:"start_time,omitempty" validate:"omitempty,clock"`
	EndTime     *string      `json:"end_time,omitempty" validate:"omitempty,clock"`
	Notes       *string      `json:"notes,omitempty"`
}

// PersonalityIntervalResponse is the response body for interval endpoints.
// @Description Personality interval attached to a sleep record.
type PersonalityIntervalResponse struct {
	ID            uuid.UUID   `json:"id"`
	SleepRecordID uuid.UUID   `json:"sleep_record_id"`
	Personality   Personality `json:"personality" example:"宇辰"`
	StartTime     string      `json:"start_time" example:"19:00"`
	EndTime       string      `json:"end_time" example:"22:00"`
	Notes         string      `json:"notes"`
}

func (p *PersonalityInterval) ToResponse() PersonalityIntervalResponse {
	return PersonalityIntervalResponse{
		ID:            p.ID,
		SleepRecordID: p.SleepRecordID,
		Personality:   p.Personality,
		StartTime:     p.StartTime,
		EndTime:       p.EndTime,
		Notes:         p.Notes,
	}
}
