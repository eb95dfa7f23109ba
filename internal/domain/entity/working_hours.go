package entity

import (
	"time"

	"github.com/google/uuid"
)

// WorkingHours is a recurring weekly availability rule: one record per
// doctor per weekday, with times already converted to UTC at creation.
// EndTime numerically at or before StartTime is a valid state meaning the
// UTC-converted shift crosses midnight into the next calendar day.
type WorkingHours struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_working_hours_doctor_day" json:"doctor_id"`
	DayOfWeek     int       `gorm:"not null;uniqueIndex:idx_working_hours_doctor_day" json:"day_of_week"`
	StartTime     string    `gorm:"type:time;not null" json:"start_time"`
	EndTime       string    `gorm:"type:time;not null" json:"end_time"`
	SlotDuration  int       `gorm:"not null" json:"slot_duration"`
	BreakDuration int       `gorm:"not null" json:"break_duration"`
	IsActive      *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor    DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Schedules []Schedule    `gorm:"foreignKey:WorkingHoursID" json:"schedules,omitempty"`
}

func (WorkingHours) TableName() string {
	return "working_hours"
}

// Active reports whether the rule participates in schedule generation.
func (w *WorkingHours) Active() bool {
	return w.IsActive == nil || *w.IsActive
}
