// Package seed provides database seeding utilities for development and
// testing.
package seed

import (
	"fmt"
	"strings"
	"sync/atomic"

	"photogram/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
	// sequence disambiguates generated usernames and emails
	sequence atomic.Uint64
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{db: db}
}

func (f *Factory) next() uint64 {
	return f.sequence.Add(1)
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	n := f.next()
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: fmt.Sprintf("%s%d", strings.ToLower(gofakeit.FirstName()), n),
		Email:    fmt.Sprintf("user%d@example.com", n),
		Password: string(hashedPassword),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePhoto constructs and persists a photo owned by the given user.
func (f *Factory) CreatePhoto(owner *models.User, overrides ...func(*models.Photo)) (*models.Photo, error) {
	photo := &models.Photo{
		Caption:  gofakeit.Sentence(6),
		ImageURL: fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
		UserID:   owner.ID,
	}

	for _, override := range overrides {
		override(photo)
	}

	if err := f.db.Create(photo).Error; err != nil {
		return nil, err
	}
	return photo, nil
}

// CreateComment persists a comment by author on photo.
func (f *Factory) CreateComment(author *models.User, photo *models.Photo, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Body:    gofakeit.Sentence(8),
		UserID:  author.ID,
		PhotoID: photo.ID,
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like, absorbing duplicates the same way the live
// write path does.
func (f *Factory) CreateLike(user *models.User, photo *models.Photo) error {
	return f.db.Exec(
		`INSERT INTO likes (user_id, photo_id, created_at) VALUES (?, ?, CURRENT_TIMESTAMP) ON CONFLICT (user_id, photo_id) DO NOTHING`,
		user.ID, photo.ID,
	).Error
}
