package service

import (
	"context"
	"testing"

	"photogram/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhotoService_CreatePhoto_Validation(t *testing.T) {
	t.Parallel()

	svc := NewPhotoService(noopPhotoRepo(), noopUserRepo())
	ctx := context.Background()

	t.Run("blank image url", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreatePhoto(ctx, CreatePhotoInput{UserID: 1, ImageURL: "   "})
		assertValidationError(t, err)
	})

	t.Run("malformed image url", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreatePhoto(ctx, CreatePhotoInput{UserID: 1, ImageURL: "not a url"})
		assertValidationError(t, err)
	})
}

func TestPhotoService_CreatePhoto_SanitizesCaption(t *testing.T) {
	t.Parallel()

	var created *models.Photo
	photoRepo := noopPhotoRepo()
	photoRepo.createFn = func(_ context.Context, p *models.Photo) error {
		p.ID = 7
		created = p
		return nil
	}
	svc := NewPhotoService(photoRepo, noopUserRepo())

	_, err := svc.CreatePhoto(context.Background(), CreatePhotoInput{
		UserID:   1,
		Caption:  `sunset <script>alert("x")</script>`,
		ImageURL: "https://example.com/sunset.jpg",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "sunset", created.Caption)
	assert.Equal(t, uint(1), created.UserID)
}

func TestPhotoService_UpdatePhoto_OwnershipRequired(t *testing.T) {
	t.Parallel()

	photoRepo := noopPhotoRepo()
	photoRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Photo, error) {
		return &models.Photo{ID: id, UserID: 1, ImageURL: "https://example.com/p.jpg"}, nil
	}
	svc := NewPhotoService(photoRepo, noopUserRepo())

	caption := "mine now"
	_, err := svc.UpdatePhoto(context.Background(), UpdatePhotoInput{
		UserID:  2, // not the owner
		PhotoID: 1,
		Caption: &caption,
	})
	assertUnauthorizedError(t, err)
}

func TestPhotoService_UpdatePhoto_OwnerCanEdit(t *testing.T) {
	t.Parallel()

	var saved *models.Photo
	photoRepo := noopPhotoRepo()
	photoRepo.updateFn = func(_ context.Context, p *models.Photo) error {
		saved = p
		return nil
	}
	svc := NewPhotoService(photoRepo, noopUserRepo())

	caption := "alpine lake"
	_, err := svc.UpdatePhoto(context.Background(), UpdatePhotoInput{
		UserID:  1,
		PhotoID: 1,
		Caption: &caption,
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "alpine lake", saved.Caption)
}

func TestPhotoService_DeletePhoto_OwnershipRequired(t *testing.T) {
	t.Parallel()

	deleted := false
	photoRepo := noopPhotoRepo()
	photoRepo.deleteFn = func(_ context.Context, _ uint) error {
		deleted = true
		return nil
	}
	svc := NewPhotoService(photoRepo, noopUserRepo())
	ctx := context.Background()

	err := svc.DeletePhoto(ctx, DeletePhotoInput{UserID: 2, PhotoID: 1})
	assertUnauthorizedError(t, err)
	assert.False(t, deleted)

	err = svc.DeletePhoto(ctx, DeletePhotoInput{UserID: 1, PhotoID: 1})
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestPhotoService_DeletePhoto_NotFoundPropagates(t *testing.T) {
	t.Parallel()

	photoRepo := noopPhotoRepo()
	photoRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Photo, error) {
		return nil, models.NewNotFoundError("Photo", id)
	}
	svc := NewPhotoService(photoRepo, noopUserRepo())

	err := svc.DeletePhoto(context.Background(), DeletePhotoInput{UserID: 1, PhotoID: 99})
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
