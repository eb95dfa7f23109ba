package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	SlotID    int       `json:"slot_id" validate:"required"`
	Notes     string    `json:"notes" validate:"omitempty,max=1000"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          uuid.UUID     `json:"id"`
	PatientID   uuid.UUID     `json:"patient_id"`
	SlotID      int           `json:"slot_id"`
	BookingCode string        `json:"booking_code"`
	Status      string        `json:"status"`
	Notes       string        `json:"notes,omitempty"`
	Slot        *SlotResponse `json:"slot,omitempty"`
	Date        string        `json:"date,omitempty"` // Format: YYYY-MM-DD
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
