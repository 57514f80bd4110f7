package domain

import (
	"time"

	"github.com/google/uuid"
)

type DoctorVisit struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Date          string    `gorm:"type:varchar(10);not null;index:idx_doctor_visits_date" json:"date"`
	Notes         string    `gorm:"type:text" json:"notes"`
	Prescriptions string    `gorm:"type:text" json:"prescriptions"`
	FollowUpDate  *string   `gorm:"type:varchar(10)" json:"follow_up_date,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (DoctorVisit) TableName() string {
	return "doctor_visits"
}

// CreateDoctorVisitRequest is the request body for recording a doctor visit.
// @Description Request payload for a medical appointment record.
type CreateDoctorVisitRequest struct {
	// Calendar date of the visit (YYYY-MM-DD)
	Date string `json:"date" validate:"required,caldate" example:"2024-02-14"`
	// Free-text visit notes
	Notes string `json:"notes" example:"sleep quality discussed"`
	// Prescriptions issued at the visit
	Prescriptions string `json:"prescriptions" example:"安眠藥 5mg"`
	// Optional date of the next scheduled visit (YYYY-MM-DD)
	FollowUpDate *string `json:"follow_up_date,omitempty" validate:"omitempty,caldate" example:"2024-03-14"`
}

// UpdateDoctorVisitRequest is the partial-patch body for a doctor visit.
// @Description Partial update payload; omitted fields keep their values.
type UpdateDoctorVisitRequest struct {
	Date          *string `json:"date,omitempty" validate:"omitempty,caldate"`
	Notes         *string `json:"notes,omitempty"`
	Prescriptions *string `json:"prescriptions,omitempty"`
	FollowUpDate  *string `json:"follow_up_date,omitempty" validate:"omitempty,caldate"`
}

// DoctorVisitResponse is the response body for doctor visit endpoints.
// @Description Medical appointment record.
type DoctorVisitResponse struct {
	ID            uuid.UUID `json:"id"`
	Date          string    `json:"date" example:"2024-02-14"`
	Notes         string    `json:"notes"`
	Prescriptions string    `json:"prescriptions"`
	FollowUpDate  *string   `json:"follow_up_date,omitempty" example:"2024-03-14"`
	CreatedAt     time.Time `json:"created_at"`
}

func (v *DoctorVisit) ToResponse() DoctorVisitResponse {
	return DoctorVisitResponse{
		ID:            v.ID,
		Date:          v.Date,
		Notes:         v.Notes,
		Prescriptions: v.Prescriptions,
		FollowUpDate:  v.FollowUpDate,
		CreatedAt:     v.CreatedAt,
	}
}

// DoctorVisitFilter contains filter parameters for listing doctor visits
type DoctorVisitFilter struct {
	From string
	To   string
}
