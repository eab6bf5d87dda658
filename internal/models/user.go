// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account in the Photogram application.
// Password holds the bcrypt hash managed by the auth handlers; the domain
// services never read it.
//
// A user's photos, comments and likes are derived by query against the owning
// UserID columns, never stored on the user row itself.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
