package repository

import (
	"errors"

	"clinic-scheduling-service/internal/domain/entity"
	domainRepo "clinic-scheduling-service/internal/domain/repository"

	"gorm.io/gorm"
)

type slotRepository struct{}

func NewSlotRepository() domainRepo.SlotRepository {
	return &slotRepository{}
}

func (r *slotRepository) FindByID(db *gorm.DB, id int) (*entity.Slot, error) {
	var slot entity.Slot
	err := db.Preload("Schedule").Where("id = ?", id).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *slotRepository) FindByScheduleID(db *gorm.DB, scheduleID int) ([]entity.Slot, error) {
	var slots []entity.Slot
	err := db.Where("schedule_id = ?", scheduleID).Order("id ASC").Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// ClaimSlot flips availability with a guarded update so two concurrent
// bookings cannot both win the same slot.
func (r *slotRepository) ClaimSlot(db *gorm.DB, id int) (int64, error) {
	result := db.Model(&entity.Slot{}).
		Where("id = ? AND is_available = ?", id, true).
		Update("is_available", false)
	return result.RowsAffected, result.Error
}

func (r *slotRepository) ReleaseSlot(db *gorm.DB, id int) error {
	return db.Model(&entity.Slot{}).
		Where("id = ?", id).
		Update("is_available", true).Error
}
