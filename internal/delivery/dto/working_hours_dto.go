package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// WorkingHoursRuleRequest is one weekly rule as submitted. Times are the
// doctor's local wall clock when Timezone is set, otherwise already UTC.
// DayOfWeek and BreakDuration are pointers because 0 is a meaningful value
// (Sunday, no break).
type WorkingHoursRuleRequest struct {
	DayOfWeek     *int   `json:"day_of_week" validate:"required,gte=0,lte=6"`
	StartTime     string `json:"start_time" validate:"required"` // Format: HH:MM
	EndTime       string `json:"end_time" validate:"required"`   // Format: HH:MM
	SlotDuration  int    `json:"slot_duration" validate:"required,gte=15,lte=60"`
	BreakDuration *int   `json:"break_duration" validate:"omitempty,gte=0,lte=30"`
	IsActive      *bool  `json:"is_active" validate:"omitempty"`
	Timezone      string `json:"timezone" validate:"omitempty"`
}

type CreateWorkingHoursRequest struct {
	DoctorID      uuid.UUID `json:"doctor_id" validate:"required"`
	DayOfWeek     *int      `json:"day_of_week" validate:"required,gte=0,lte=6"`
	StartTime     string    `json:"start_time" validate:"required"` // Format: HH:MM
	EndTime       string    `json:"end_time" validate:"required"`   // Format: HH:MM
	SlotDuration  int       `json:"slot_duration" validate:"required,gte=15,lte=60"`
	BreakDuration *int      `json:"break_duration" validate:"omitempty,gte=0,lte=30"`
	IsActive      *bool     `json:"is_active" validate:"omitempty"`
	Timezone      string    `json:"timezone" validate:"omitempty"`
}

type BulkCreateWorkingHoursRequest struct {
	DoctorID uuid.UUID                 `json:"doctor_id" validate:"required"`
	Rules    []WorkingHoursRuleRequest `json:"rules" validate:"required,min=1,dive"`
}

type UpdateWorkingHoursRequest struct {
	StartTime     string `json:"start_time" validate:"omitempty"`
	EndTime       string `json:"end_time" validate:"omitempty"`
	SlotDuration  *int   `json:"slot_duration" validate:"omitempty,gte=15,lte=60"`
	BreakDuration *int   `json:"break_duration" validate:"omitempty,gte=0,lte=30"`
	IsActive      *bool  `json:"is_active" validate:"omitempty"`
	Timezone      string `json:"timezone" validate:"omitempty"`
}

// Response DTOs

type WorkingHoursResponse struct {
	ID            int       `json:"id"`
	DoctorID      uuid.UUID `json:"doctor_id"`
	DayOfWeek     int       `json:"day_of_week"`
	StartTime     string    `json:"start_time"` // UTC
	EndTime       string    `json:"end_time"`   // UTC
	SlotDuration  int       `json:"slot_duration"`
	BreakDuration int       `json:"break_duration"`
	IsActive      *bool     `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type WorkingHoursListResponse struct {
	WorkingHours []WorkingHoursResponse `json:"working_hours"`
	Total        int                    `json:"total"`
}
