package seed

import (
	"fmt"
	"log"
	"math/rand"

	"photogram/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPhotos   int
	ShouldClean bool
}

// Seed populates the database with test data: users, photos, and a social
// mesh of comments and likes on top of them.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d photos...", opts.NumUsers, opts.NumPhotos)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	factory := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create users: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("✓ %d test users created", len(users))

	if len(users) == 0 {
		return nil
	}

	photos := make([]*models.Photo, 0, opts.NumPhotos)
	for i := 0; i < opts.NumPhotos; i++ {
		owner := users[rand.Intn(len(users))]
		photo, err := factory.CreatePhoto(owner)
		if err != nil {
			return fmt.Errorf("failed to create photos: %w", err)
		}
		photos = append(photos, photo)
	}
	log.Printf("✓ %d photos created", len(photos))

	var comments, likes int
	for _, photo := range photos {
		for i := 0; i < rand.Intn(4); i++ {
			author := users[rand.Intn(len(users))]
			if _, err := factory.CreateComment(author, photo); err != nil {
				return fmt.Errorf("failed to create comments: %w", err)
			}
			comments++
		}
		for i := 0; i < rand.Intn(len(users)+1); i++ {
			fan := users[rand.Intn(len(users))]
			if err := factory.CreateLike(fan, photo); err != nil {
				return fmt.Errorf("failed to create likes: %w", err)
			}
			likes++
		}
	}
	log.Printf("✓ %d comments and %d like attempts created", comments, likes)

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE comments, likes, photos, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}
