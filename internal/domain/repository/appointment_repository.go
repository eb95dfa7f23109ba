package repository

import (
	"clinic-scheduling-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindActiveBySlot(db *gorm.DB, slotID int) (*entity.Appointment, error)
	// Cancel atomically cancels an appointment ONLY if not already cancelled.
	// Returns affected rows: 1 = success, 0 = already cancelled.
	Cancel(db *gorm.DB, id uuid.UUID) (int64, error)
	// CountBookedBySchedule counts non-cancelled appointments on any slot of
	// the schedule. Used as the delete/regenerate guard inside the same
	// transaction that performs the mutation.
	CountBookedBySchedule(db *gorm.DB, scheduleID int) (int64, error)
	// CountBookedByWorkingHours counts non-cancelled appointments across all
	// schedules generated from the rule.
	CountBookedByWorkingHours(db *gorm.DB, workingHoursID int) (int64, error)
}
