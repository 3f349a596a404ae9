package models

import "time"

// GuestOwnerID owns the shared record set used by unauthenticated requests.
const GuestOwnerID = "guest"

// User represents a registered user. Every portfolio record belongs to exactly
// one owner, which is either a user ID or GuestOwnerID.
type User struct {
	Base
	Email       string     `gorm:"uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"not null" json:"-"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}
