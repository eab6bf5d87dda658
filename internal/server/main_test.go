package server

import (
	"testing"

	"photogram/internal/config"
	"photogram/internal/database"
	"photogram/internal/models"
	"photogram/internal/repository"
	"photogram/internal/service"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer builds a Server against an in-memory sqlite store, the way
// handlers see it in production minus HTTP middleware.
func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(database.PersistentModels()...); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	s := &Server{
		config:      &config.Config{JWTSecret: "test-secret-for-handler-tests-only!"},
		db:          db,
		userRepo:    userRepo,
		photoRepo:   photoRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
	}
	s.userService = service.NewUserService(userRepo)
	s.photoService = service.NewPhotoService(photoRepo, userRepo)
	s.commentService = service.NewCommentService(commentRepo, photoRepo, userRepo)
	s.likeService = service.NewLikeService(likeRepo, photoRepo, userRepo)
	s.feedService = service.NewFeedService(photoRepo, commentRepo)

	return s, db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("SecurePass12!@"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func seedPhoto(t *testing.T, db *gorm.DB, owner *models.User, caption string) *models.Photo {
	t.Helper()
	photo := &models.Photo{
		Caption:  caption,
		ImageURL: "https://example.com/" + caption + ".jpg",
		UserID:   owner.ID,
	}
	if err := db.Create(photo).Error; err != nil {
		t.Fatalf("create photo: %v", err)
	}
	return photo
}

// asUser mounts handler behind a stub that injects the acting user, the way
// the auth middleware does.
func asUser(userID uint, handler fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return handler(c)
	}
}
