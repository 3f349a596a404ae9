package models

import (
	"time"

	"pfa/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for account-level tables
type Base struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}

// Row holds the storage columns shared by portfolio records. A user's records
// are replaced wholesale on save, so rows carry no timestamps or soft deletes.
// Position keeps the user's ordering stable across save and fetch.
type Row struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"-"`
	OwnerID  string `gorm:"not null;index" json:"-"`
	Position int    `gorm:"not null;default:0" json:"-"`
}

// BeforeCreate hook generates a UUIDv7 for new rows
func (r *Row) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New()
	}
	return nil
}
