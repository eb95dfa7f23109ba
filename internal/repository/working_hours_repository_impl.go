package repository

import (
	"errors"

	"clinic-scheduling-service/internal/domain/entity"
	domainRepo "clinic-scheduling-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type workingHoursRepository struct{}

func NewWorkingHoursRepository() domainRepo.WorkingHoursRepository {
	return &workingHoursRepository{}
}

func (r *workingHoursRepository) Create(db *gorm.DB, workingHours *entity.WorkingHours) error {
	return db.Create(workingHours).Error
}

func (r *workingHoursRepository) FindByID(db *gorm.DB, id int) (*entity.WorkingHours, error) {
	var workingHours entity.WorkingHours
	err := db.Where("id = ?", id).First(&workingHours).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &workingHours, nil
}

func (r *workingHoursRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.WorkingHours, error) {
	var rules []entity.WorkingHours
	err := db.Where("doctor_id = ?", doctorID).Order("day_of_week ASC").Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *workingHoursRepository) FindByDoctorAndDay(db *gorm.DB, doctorID uuid.UUID, dayOfWeek int) (*entity.WorkingHours, error) {
	var workingHours entity.WorkingHours
	err := db.Where("doctor_id = ? AND day_of_week = ?", doctorID, dayOfWeek).First(&workingHours).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &workingHours, nil
}

func (r *workingHoursRepository) FindActiveByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.WorkingHours, error) {
	var rules []entity.WorkingHours
	err := db.Where("doctor_id = ? AND is_active = ?", doctorID, true).Order("day_of_week ASC").Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *workingHoursRepository) Update(db *gorm.DB, workingHours *entity.WorkingHours) error {
	return db.Omit("Doctor", "Schedules").Save(workingHours).Error
}

func (r *workingHoursRepository) Delete(db *gorm.DB, id int) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.WorkingHours{})
	return affected.RowsAffected, affected.Error
}

func (r *workingHoursRepository) DeleteByDoctor(db *gorm.DB, doctorID uuid.UUID) (int64, error) {
	affected := db.Where("doctor_id = ?", doctorID).Delete(&entity.WorkingHours{})
	return affected.RowsAffected, affected.Error
}
