package models

import (
	"time"
)

// Like represents a user's like on a photo.
// The combination of UserID and PhotoID must be unique.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_photo" json:"user_id"`
	PhotoID   uint      `gorm:"not null;uniqueIndex:idx_user_photo" json:"photo_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user"`
}

// OwnerID returns the ID of the user who holds this like.
func (l *Like) OwnerID() uint {
	return l.UserID
}
