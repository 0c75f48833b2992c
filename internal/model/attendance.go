package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DayKeyLayout is the calendar-day grouping key format, local time.
const DayKeyLayout = "2006-01-02"

// AttendanceRecord holds one check-in/check-out cycle for an identity on a
// given day. Name is a snapshot of the employee's name at check-in time and
// deliberately stays stale after roster edits.
type AttendanceRecord struct {
	ID            uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	IdentityToken string     `json:"identity_token" gorm:"size:64;not null;index:idx_attendance_token_date"`
	Name          string     `json:"name" gorm:"size:255;not null"`
	Date          string     `json:"date" gorm:"size:10;not null;index:idx_attendance_token_date"`
	CheckIn       time.Time  `json:"check_in" gorm:"not null;index"`
	CheckOut      *time.Time `json:"check_out,omitempty"`
	HoursWorked   *float64   `json:"hours_worked,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TableName overrides the default pluralization.
func (AttendanceRecord) TableName() string {
	return "attendance"
}

// BeforeCreate sets UUID before creating the record.
func (r *AttendanceRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Open reports whether the record is still awaiting a check-out.
func (r *AttendanceRecord) Open() bool {
	return r.CheckOut == nil
}
