package entity

import "time"

// Slot is one bookable window inside a schedule. The booking layer flips
// IsAvailable when an appointment claims the slot; it never changes the
// time boundaries.
type Slot struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	ScheduleID  int       `gorm:"not null;index" json:"schedule_id"`
	StartTime   string    `gorm:"type:time;not null" json:"start_time"`
	EndTime     string    `gorm:"type:time;not null" json:"end_time"`
	IsAvailable *bool     `gorm:"not null;default:true;index" json:"is_available"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Schedule     Schedule      `gorm:"foreignKey:ScheduleID" json:"schedule,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:SlotID" json:"appointments,omitempty"`
}

func (Slot) TableName() string {
	return "slots"
}
