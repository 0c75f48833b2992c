package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Identity is a provisioned account at the identity provider. Token is the
// stable opaque string that joins identities to employees and attendance.
type Identity struct {
	ID             uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	CredentialHash string    `json:"-" gorm:"size:255;not null"`
	Token          string    `json:"token" gorm:"uniqueIndex;size:64;not null"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName overrides the default pluralization.
func (Identity) TableName() string {
	return "identities"
}

// BeforeCreate sets UUID before creating the record.
func (i *Identity) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
