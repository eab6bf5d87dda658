package service

import (
	"context"

	"photogram/internal/models"
	"photogram/internal/repository"
)

// LikeService manages the like relationship between users and photos.
// Liking is idempotent in both directions: liking an already-liked photo
// and unliking a photo that was never liked are silent successes.
type LikeService struct {
	likeRepo  repository.LikeRepository
	photoRepo repository.PhotoRepository
	userRepo  repository.UserRepository
}

func NewLikeService(likeRepo repository.LikeRepository, photoRepo repository.PhotoRepository, userRepo repository.UserRepository) *LikeService {
	return &LikeService{likeRepo: likeRepo, photoRepo: photoRepo, userRepo: userRepo}
}

// LikePhoto records userID's like on photoID. Returns the photo with
// refreshed counts.
func (s *LikeService) LikePhoto(ctx context.Context, userID, photoID uint) (*models.Photo, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.photoRepo.GetByID(ctx, photoID, userID); err != nil {
		return nil, err
	}
	if _, err := s.likeRepo.Like(ctx, userID, photoID); err != nil {
		return nil, err
	}
	return s.photoRepo.GetByID(ctx, photoID, userID)
}

// UnlikePhoto removes userID's like on photoID if present.
func (s *LikeService) UnlikePhoto(ctx context.Context, userID, photoID uint) (*models.Photo, error) {
	if _, err := s.photoRepo.GetByID(ctx, photoID, userID); err != nil {
		return nil, err
	}
	if err := s.likeRepo.Unlike(ctx, userID, photoID); err != nil {
		return nil, err
	}
	return s.photoRepo.GetByID(ctx, photoID, userID)
}

// Fans returns the users who like photoID, in the order the likes were
// placed.
func (s *LikeService) Fans(ctx context.Context, photoID uint) ([]models.User, error) {
	if _, err := s.photoRepo.GetByID(ctx, photoID, 0); err != nil {
		return nil, err
	}
	return s.likeRepo.Fans(ctx, photoID)
}

// ListLikedPhotos returns the photos userID has liked.
func (s *LikeService) ListLikedPhotos(ctx context.Context, userID uint) ([]*models.Photo, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.photoRepo.ListLikedBy(ctx, userID)
}
