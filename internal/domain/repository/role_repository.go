package repository

import (
	"clinic-scheduling-service/internal/domain/entity"

	"gorm.io/gorm"
)

type RoleRepository interface {
	FindByID(db *gorm.DB, id int) (*entity.Role, error)
	// FirstOrCreate seeds a role if missing; used at bootstrap.
	FirstOrCreate(db *gorm.DB, role *entity.Role) error
}
