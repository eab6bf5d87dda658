package repository

import (
	"context"
	"testing"

	"photogram/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_CreateAndListInCreationOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	photo := createTestPhoto(t, db, alice, "discussed")

	bodies := []string{"first!", "second comment", "third one"}
	authors := []uint{bob.ID, alice.ID, bob.ID}
	for i, body := range bodies {
		require.NoError(t, repo.Create(ctx, &models.Comment{
			Body:    body,
			UserID:  authors[i],
			PhotoID: photo.ID,
		}))
	}

	comments, err := repo.ListByPhoto(ctx, photo.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	for i, c := range comments {
		assert.Equal(t, bodies[i], c.Body)
		assert.Equal(t, authors[i], c.UserID)
		assert.NotZero(t, c.CreatedAt)
		assert.NotEmpty(t, c.User.Username)
	}

	count, err := repo.CountByPhoto(ctx, photo.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestCommentRepository_ListByPhotoEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)

	alice := createTestUser(t, db, "alice")
	photo := createTestPhoto(t, db, alice, "quiet")

	comments, err := repo.ListByPhoto(context.Background(), photo.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCommentRepository_GetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)

	_, err := repo.GetByID(context.Background(), 12345)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
