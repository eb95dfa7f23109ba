package entity

import "github.com/google/uuid"

// DoctorProfile represents doctor-specific profile data. IsAvailable is a
// practice-level switch (leave, suspension); schedule generation requires
// both the account to be active and the doctor to be available.
type DoctorProfile struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	LicenseNumber  string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	Specialization string    `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Biography      string    `gorm:"type:text" json:"biography,omitempty"`
	IsAvailable    *bool     `gorm:"not null;default:true" json:"is_available"`

	// Relationships
	User         User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	WorkingHours []WorkingHours `gorm:"foreignKey:DoctorID" json:"working_hours,omitempty"`
	Schedules    []Schedule     `gorm:"foreignKey:DoctorID" json:"schedules,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
