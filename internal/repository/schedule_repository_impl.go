package repository

import (
	"errors"
	"time"

	"clinic-scheduling-service/internal/domain/entity"
	domainRepo "clinic-scheduling-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type scheduleRepository struct{}

func NewScheduleRepository() domainRepo.ScheduleRepository {
	return &scheduleRepository{}
}

// Create inserts the schedule and its Slots association in one statement,
// so the per-date unit commits or fails as a whole.
func (r *scheduleRepository) Create(db *gorm.DB, schedule *entity.Schedule) error {
	return db.Create(schedule).Error
}

func (r *scheduleRepository) FindByID(db *gorm.DB, id int) (*entity.Schedule, error) {
	var schedule entity.Schedule
	err := db.Preload("Slots", func(db *gorm.DB) *gorm.DB {
		return db.Order("slots.id ASC")
	}).Where("id = ?", id).First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) FindByDoctorAndRange(db *gorm.DB, doctorID uuid.UUID, startAt, endAt string) ([]entity.Schedule, error) {
	var schedules []entity.Schedule
	query := db.Where("doctor_id = ?", doctorID)
	if startAt != "" {
		query = query.Where("date >= ?", startAt)
	}
	if endAt != "" {
		query = query.Where("date <= ?", endAt)
	}
	err := query.Preload("Slots", func(db *gorm.DB) *gorm.DB {
		return db.Order("slots.id ASC")
	}).Order("date ASC").Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) FindByDoctorDateRule(db *gorm.DB, doctorID uuid.UUID, date time.Time, workingHoursID int) (*entity.Schedule, error) {
	var schedule entity.Schedule
	err := db.Where("doctor_id = ? AND date = ? AND working_hours_id = ?", doctorID, date, workingHoursID).
		First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

// DeleteWithSlots removes the schedule's slots first, then the schedule.
// Callers hold a transaction and have already verified no slot is booked.
func (r *scheduleRepository) DeleteWithSlots(db *gorm.DB, id int) (int64, error) {
	if err := db.Where("schedule_id = ?", id).Delete(&entity.Slot{}).Error; err != nil {
		return 0, err
	}
	affected := db.Where("id = ?", id).Delete(&entity.Schedule{})
	return affected.RowsAffected, affected.Error
}

func (r *scheduleRepository) DeleteByWorkingHours(db *gorm.DB, workingHoursID int) (int64, error) {
	scheduleIDs := db.Model(&entity.Schedule{}).Select("id").Where("working_hours_id = ?", workingHoursID)
	if err := db.Where("schedule_id IN (?)", scheduleIDs).Delete(&entity.Slot{}).Error; err != nil {
		return 0, err
	}
	affected := db.Where("working_hours_id = ?", workingHoursID).Delete(&entity.Schedule{})
	return affected.RowsAffected, affected.Error
}

func (r *scheduleRepository) DeleteByDoctor(db *gorm.DB, doctorID uuid.UUID) (int64, error) {
	scheduleIDs := db.Model(&entity.Schedule{}).Select("id").Where("doctor_id = ?", doctorID)
	if err := db.Where("schedule_id IN (?)", scheduleIDs).Delete(&entity.Slot{}).Error; err != nil {
		return 0, err
	}
	affected := db.Where("doctor_id = ?", doctorID).Delete(&entity.Schedule{})
	return affected.RowsAffected, affected.Error
}
