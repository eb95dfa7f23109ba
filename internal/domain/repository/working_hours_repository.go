package repository

import (
	"clinic-scheduling-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkingHoursRepository interface {
	Create(db *gorm.DB, workingHours *entity.WorkingHours) error
	FindByID(db *gorm.DB, id int) (*entity.WorkingHours, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.WorkingHours, error)
	FindByDoctorAndDay(db *gorm.DB, doctorID uuid.UUID, dayOfWeek int) (*entity.WorkingHours, error)
	FindActiveByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.WorkingHours, error)
	Update(db *gorm.DB, workingHours *entity.WorkingHours) error
	Delete(db *gorm.DB, id int) (int64, error)
	DeleteByDoctor(db *gorm.DB, doctorID uuid.UUID) (int64, error)
}
