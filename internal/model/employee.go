package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Role determines the post-login destination for an employee.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Employee represents a roster entry. IdentityToken is the opaque string
// issued by the identity provider; it doubles as the QR scan payload.
type Employee struct {
	ID            uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	IdentityToken string          `json:"identity_token" gorm:"uniqueIndex;size:64;not null"`
	Name          string          `json:"name" gorm:"size:255;not null"`
	Email         string          `json:"email" gorm:"uniqueIndex;size:255;not null"`
	HourlyRate    decimal.Decimal `json:"hourly_rate" gorm:"type:decimal(10,2);not null"`
	Department    string          `json:"department,omitempty" gorm:"size:255"`
	BirthDate     string          `json:"birth_date,omitempty" gorm:"size:10"`
	Address       string          `json:"address,omitempty" gorm:"size:512"`
	Role          Role            `json:"role" gorm:"type:varchar(20);not null;default:'employee'"`
	Active        bool            `json:"active" gorm:"default:true;index"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `json:"-" gorm:"index"`
}

// TableName overrides the default pluralization.
func (Employee) TableName() string {
	return "employees"
}

// BeforeCreate sets UUID before creating the record.
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
