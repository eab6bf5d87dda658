// Package service implements the application's business logic on top of the
// repository layer. Services validate input, enforce ownership, and keep
// cache entries coherent.
package service

import (
	"context"
	"net/url"
	"strings"

	"photogram/internal/authz"
	"photogram/internal/models"
	"photogram/internal/observability"
	"photogram/internal/repository"
	"photogram/internal/sanitize"
)

type PhotoService struct {
	photoRepo repository.PhotoRepository
	userRepo  repository.UserRepository
}

type CreatePhotoInput struct {
	UserID   uint
	Caption  string
	ImageURL string
}

type ListPhotosInput struct {
	Limit         int
	Offset        int
	CurrentUserID uint
}

type UpdatePhotoInput struct {
	UserID   uint
	PhotoID  uint
	Caption  *string
	ImageURL *string
}

type DeletePhotoInput struct {
	UserID  uint
	PhotoID uint
}

func NewPhotoService(photoRepo repository.PhotoRepository, userRepo repository.UserRepository) *PhotoService {
	return &PhotoService{photoRepo: photoRepo, userRepo: userRepo}
}

const maxCaptionLen = 2000

func (s *PhotoService) CreatePhoto(ctx context.Context, in CreatePhotoInput) (*models.Photo, error) {
	imageURL := strings.TrimSpace(in.ImageURL)
	if imageURL == "" {
		return nil, models.NewFieldValidationError("Photo is invalid", map[string]string{
			"image": "can't be blank",
		})
	}
	if _, err := url.ParseRequestURI(imageURL); err != nil {
		return nil, models.NewFieldValidationError("Photo is invalid", map[string]string{
			"image": "must be a valid URL",
		})
	}

	caption := sanitize.Text(in.Caption)
	if len(caption) > maxCaptionLen {
		return nil, models.NewFieldValidationError("Photo is invalid", map[string]string{
			"caption": "is too long (maximum is 2000 characters)",
		})
	}

	if _, err := s.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	photo := &models.Photo{
		Caption:  caption,
		ImageURL: imageURL,
		UserID:   in.UserID,
	}
	if err := s.photoRepo.Create(ctx, photo); err != nil {
		return nil, err
	}
	return s.photoRepo.GetByID(ctx, photo.ID, in.UserID)
}

func (s *PhotoService) GetPhoto(ctx context.Context, photoID, currentUserID uint) (*models.Photo, error) {
	return s.photoRepo.GetByID(ctx, photoID, currentUserID)
}

func (s *PhotoService) ListPhotos(ctx context.Context, in ListPhotosInput) ([]*models.Photo, error) {
	limit := in.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.photoRepo.List(ctx, limit, in.Offset, in.CurrentUserID)
}

func (s *PhotoService) GetUserPhotos(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Photo, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.photoRepo.GetByUserID(ctx, userID, limit, offset, currentUserID)
}

func (s *PhotoService) UpdatePhoto(ctx context.Context, in UpdatePhotoInput) (*models.Photo, error) {
	photo, err := s.photoRepo.GetByID(ctx, in.PhotoID, in.UserID)
	if err != nil {
		return nil, err
	}

	if !authz.CanMutate(in.UserID, photo) {
		observability.AuthorizationDenials.WithLabelValues("photo_update").Inc()
		return nil, models.NewUnauthorizedError("You can only update your own photos")
	}

	if in.Caption != nil {
		caption := sanitize.Text(*in.Caption)
		if len(caption) > maxCaptionLen {
			return nil, models.NewFieldValidationError("Photo is invalid", map[string]string{
				"caption": "is too long (maximum is 2000 characters)",
			})
		}
		photo.Caption = caption
	}
	if in.ImageURL != nil {
		imageURL := strings.TrimSpace(*in.ImageURL)
		if imageURL == "" {
			return nil, models.NewFieldValidationError("Photo is invalid", map[string]string{
				"image": "can't be blank",
			})
		}
		if _, err := url.ParseRequestURI(imageURL); err != nil {
			return nil, models.NewFieldValidationError("Photo is invalid", map[string]string{
				"image": "must be a valid URL",
			})
		}
		photo.ImageURL = imageURL
	}

	if err := s.photoRepo.Update(ctx, photo); err != nil {
		return nil, err
	}
	return s.photoRepo.GetByID(ctx, in.PhotoID, in.UserID)
}

func (s *PhotoService) DeletePhoto(ctx context.Context, in DeletePhotoInput) error {
	photo, err := s.photoRepo.GetByID(ctx, in.PhotoID, in.UserID)
	if err != nil {
		return err
	}

	if !authz.CanMutate(in.UserID, photo) {
		observability.AuthorizationDenials.WithLabelValues("photo_delete").Inc()
		return models.NewUnauthorizedError("You can only delete your own photos")
	}

	return s.photoRepo.Delete(ctx, in.PhotoID)
}
