package repository

import (
	"clinic-scheduling-service/internal/domain/entity"

	"gorm.io/gorm"
)

type SlotRepository interface {
	FindByID(db *gorm.DB, id int) (*entity.Slot, error)
	FindByScheduleID(db *gorm.DB, scheduleID int) ([]entity.Slot, error)
	// ClaimSlot atomically flips an available slot to unavailable.
	// Returns affected rows: 1 = claimed, 0 = already taken.
	ClaimSlot(db *gorm.DB, id int) (int64, error)
	ReleaseSlot(db *gorm.DB, id int) error
}
