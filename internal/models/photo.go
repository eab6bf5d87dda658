// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Photo represents an uploaded photo in the Photogram application.
// The owning UserID is set at creation and never reassigned.
type Photo struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Caption  string `gorm:"type:text" json:"caption"`
	ImageURL string `gorm:"not null" json:"image_url"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	User     User   `gorm:"foreignKey:UserID" json:"user"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments_count"`
	// Liked indicates whether the current requesting user liked this photo (computed)
	Liked     bool      `gorm:"->" json:"liked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnerID returns the ID of the user who owns this photo.
func (p *Photo) OwnerID() uint {
	return p.UserID
}
