// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Comment represents a comment on a photo. Comments are write-once: there is
// no edit path, and they are only removed when their photo is deleted.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	PhotoID   uint      `gorm:"not null;index" json:"photo_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// OwnerID returns the ID of the comment's author.
func (c *Comment) OwnerID() uint {
	return c.UserID
}
