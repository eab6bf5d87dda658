package repository

import (
	"context"
	"testing"

	"photogram/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeRepository_LikeIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	photo := createTestPhoto(t, db, alice, "sunset")

	created, err := repo.Like(ctx, bob.ID, photo.ID)
	require.NoError(t, err)
	assert.True(t, created)

	// Second attempt is absorbed, not an error and not a second row.
	created, err = repo.Like(ctx, bob.ID, photo.ID)
	require.NoError(t, err)
	assert.False(t, created)

	var count int64
	require.NoError(t, db.Model(&models.Like{}).
		Where("user_id = ? AND photo_id = ?", bob.ID, photo.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLikeRepository_ToggleSequences(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	photo := createTestPhoto(t, db, alice, "harbor")

	countFor := func() int64 {
		var n int64
		require.NoError(t, db.Model(&models.Like{}).
			Where("user_id = ? AND photo_id = ?", alice.ID, photo.ID).
			Count(&n).Error)
		return n
	}

	// like; like => one record
	_, err := repo.Like(ctx, alice.ID, photo.ID)
	require.NoError(t, err)
	_, err = repo.Like(ctx, alice.ID, photo.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), countFor())

	// like; unlike; unlike => zero records, no error on the second unlike
	require.NoError(t, repo.Unlike(ctx, alice.ID, photo.ID))
	require.NoError(t, repo.Unlike(ctx, alice.ID, photo.ID))
	assert.Equal(t, int64(0), countFor())

	// the pair can be re-liked afterwards
	created, err := repo.Like(ctx, alice.ID, photo.ID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(1), countFor())
}

func TestLikeRepository_UnlikeOnlyRemovesOwnLike(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	photo := createTestPhoto(t, db, alice, "forest")

	_, err := repo.Like(ctx, alice.ID, photo.ID)
	require.NoError(t, err)
	_, err = repo.Like(ctx, bob.ID, photo.ID)
	require.NoError(t, err)

	// Bob's unlike is scoped to his own row.
	require.NoError(t, repo.Unlike(ctx, bob.ID, photo.ID))

	liked, err := repo.IsLiked(ctx, alice.ID, photo.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = repo.IsLiked(ctx, bob.ID, photo.ID)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestLikeRepository_Fans(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")
	photo := createTestPhoto(t, db, alice, "lighthouse")

	_, err := repo.Like(ctx, bob.ID, photo.ID)
	require.NoError(t, err)
	_, err = repo.Like(ctx, bob.ID, photo.ID) // duplicate, absorbed
	require.NoError(t, err)
	_, err = repo.Like(ctx, carol.ID, photo.ID)
	require.NoError(t, err)

	fans, err := repo.Fans(ctx, photo.ID)
	require.NoError(t, err)
	require.Len(t, fans, 2)

	names := []string{fans[0].Username, fans[1].Username}
	assert.Contains(t, names, "bob")
	assert.Contains(t, names, "carol")
}

func TestLikeRepository_FansEmptyWithoutLikes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)

	alice := createTestUser(t, db, "alice")
	photo := createTestPhoto(t, db, alice, "empty")

	fans, err := repo.Fans(context.Background(), photo.ID)
	require.NoError(t, err)
	assert.Empty(t, fans)
}

func TestLikeRepository_ListByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	p1 := createTestPhoto(t, db, alice, "one")
	p2 := createTestPhoto(t, db, alice, "two")

	_, err := repo.Like(ctx, bob.ID, p1.ID)
	require.NoError(t, err)
	_, err = repo.Like(ctx, bob.ID, p2.ID)
	require.NoError(t, err)

	likes, err := repo.ListByUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, likes, 2)
	assert.Equal(t, p1.ID, likes[0].PhotoID)
	assert.Equal(t, p2.ID, likes[1].PhotoID)
}
