package repository

import (
	"testing"

	"photogram/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupMockDB returns a gorm DB backed by sqlmock for SQL-level assertions.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

// setupTestDB returns an in-memory sqlite DB with the full schema, used for
// behavior tests (uniqueness, cascade, ordering).
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Photo{},
		&models.Comment{},
		&models.Like{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestPhoto(t *testing.T, db *gorm.DB, owner *models.User, caption string) *models.Photo {
	t.Helper()
	photo := &models.Photo{
		Caption:  caption,
		ImageURL: "https://photos.example/" + caption + ".png",
		UserID:   owner.ID,
	}
	require.NoError(t, db.Create(photo).Error)
	return photo
}
