package repository

import (
	"time"

	"clinic-scheduling-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleRepository interface {
	// Create persists a schedule together with its slots in one insert.
	Create(db *gorm.DB, schedule *entity.Schedule) error
	FindByID(db *gorm.DB, id int) (*entity.Schedule, error)
	FindByDoctorAndRange(db *gorm.DB, doctorID uuid.UUID, startAt, endAt string) ([]entity.Schedule, error)
	FindByDoctorDateRule(db *gorm.DB, doctorID uuid.UUID, date time.Time, workingHoursID int) (*entity.Schedule, error)
	DeleteWithSlots(db *gorm.DB, id int) (int64, error)
	// DeleteByWorkingHours removes every schedule generated from a rule,
	// slots included. Callers verify no slot is booked first.
	DeleteByWorkingHours(db *gorm.DB, workingHoursID int) (int64, error)
	DeleteByDoctor(db *gorm.DB, doctorID uuid.UUID) (int64, error)
}
