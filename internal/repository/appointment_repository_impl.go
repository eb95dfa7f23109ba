package repository

import (
	"errors"

	"clinic-scheduling-service/internal/domain/entity"
	domainRepo "clinic-scheduling-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Slot.Schedule").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Slot.Schedule").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindActiveBySlot(db *gorm.DB, slotID int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("slot_id = ? AND status != ?", slotID, entity.AppointmentStatusCancelled).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Cancel(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status != ?", id, entity.AppointmentStatusCancelled).
		Update("status", entity.AppointmentStatusCancelled)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) CountBookedBySchedule(db *gorm.DB, scheduleID int) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Joins("JOIN slots ON slots.id = appointments.slot_id").
		Where("slots.schedule_id = ? AND appointments.status != ?", scheduleID, entity.AppointmentStatusCancelled).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountBookedByWorkingHours(db *gorm.DB, workingHoursID int) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Joins("JOIN slots ON slots.id = appointments.slot_id").
		Joins("JOIN schedules ON schedules.id = slots.schedule_id").
		Where("schedules.working_hours_id = ? AND appointments.status != ?", workingHoursID, entity.AppointmentStatusCancelled).
		Count(&count).Error
	return count, err
}
