package entity

import (
	"time"

	"github.com/google/uuid"
)

// Schedule is the expansion of one WorkingHours rule onto one UTC calendar
// date. Start/end times are copied verbatim from the rule (already UTC);
// a midnight-crossing rule still produces a single schedule row on the date
// the shift starts, never a second row for the overflow day.
type Schedule struct {
	ID              int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_schedules_doctor_date_rule" json:"doctor_id"`
	WorkingHoursID  int       `gorm:"not null;uniqueIndex:idx_schedules_doctor_date_rule" json:"working_hours_id"`
	Date            time.Time `gorm:"type:date;not null;uniqueIndex:idx_schedules_doctor_date_rule;index" json:"date"`
	StartTime       string    `gorm:"type:time;not null" json:"start_time"`
	EndTime         string    `gorm:"type:time;not null" json:"end_time"`
	IsAutoGenerated bool      `gorm:"not null;default:true" json:"is_auto_generated"`
	IsAvailable     *bool     `gorm:"not null;default:true" json:"is_available"`
	MaxAppointments int       `gorm:"not null;default:1" json:"max_appointments"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor       DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	WorkingHours WorkingHours  `gorm:"foreignKey:WorkingHoursID" json:"working_hours,omitempty"`
	Slots        []Slot        `gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE" json:"slots,omitempty"`
}

func (Schedule) TableName() string {
	return "schedules"
}
