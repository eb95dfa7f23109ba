package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type GenerateSchedulesRequest struct {
	DoctorID           uuid.UUID `json:"doctor_id" validate:"required"`
	StartDate          string    `json:"start_date" validate:"required"` // Format: YYYY-MM-DD
	EndDate            string    `json:"end_date" validate:"required"`   // Format: YYYY-MM-DD
	RegenerateExisting bool      `json:"regenerate_existing"`
}

// Response DTOs

type SlotResponse struct {
	ID          int    `json:"id"`
	ScheduleID  int    `json:"schedule_id"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable *bool  `json:"is_available"`
}

type ScheduleResponse struct {
	ID              int            `json:"id"`
	DoctorID        uuid.UUID      `json:"doctor_id"`
	WorkingHoursID  int            `json:"working_hours_id"`
	Date            string         `json:"date"` // Format: YYYY-MM-DD
	StartTime       string         `json:"start_time"`
	EndTime         string         `json:"end_time"`
	IsAutoGenerated bool           `json:"is_auto_generated"`
	IsAvailable     *bool          `json:"is_available"`
	MaxAppointments int            `json:"max_appointments"`
	Slots           []SlotResponse `json:"slots,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Total     int                `json:"total"`
}

// SkippedDateResponse reports one date the generator passed over and why.
type SkippedDateResponse struct {
	Date   string `json:"date"` // Format: YYYY-MM-DD
	Reason string `json:"reason"`
	Detail string `json:"detail,omitempty"`
}

type GenerateSchedulesResponse struct {
	TotalGenerated     int                   `json:"total_generated"`
	GeneratedSchedules []ScheduleResponse    `json:"generated_schedules"`
	Skipped            []SkippedDateResponse `json:"skipped,omitempty"`
}
