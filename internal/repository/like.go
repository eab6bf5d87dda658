package repository

import (
	"context"

	"photogram/internal/cache"
	"photogram/internal/models"
	"photogram/internal/observability"

	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations.
type LikeRepository interface {
	// Like inserts a like for (userID, photoID). A duplicate attempt is
	// absorbed by the store's uniqueness constraint; created reports whether
	// a row was actually inserted.
	Like(ctx context.Context, userID, photoID uint) (created bool, err error)
	Unlike(ctx context.Context, userID, photoID uint) error
	IsLiked(ctx context.Context, userID, photoID uint) (bool, error)
	CountByPhoto(ctx context.Context, photoID uint) (int64, error)
	Fans(ctx context.Context, photoID uint) ([]models.User, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Like, error)
}

// likeRepository implements LikeRepository
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Like(ctx context.Context, userID, photoID uint) (bool, error) {
	// INSERT ... ON CONFLICT DO NOTHING is atomic: under concurrent likes for
	// the same pair, exactly one insert succeeds and the rest fall through to
	// the no-op path without surfacing a constraint error.
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO likes (user_id, photo_id, created_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (user_id, photo_id) DO NOTHING`,
		userID, photoID,
	)
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}

	created := result.RowsAffected > 0
	if created {
		observability.LikesCreated.Inc()
	} else {
		observability.DuplicateLikesSuppressed.Inc()
	}
	cache.InvalidatePhoto(ctx, photoID)
	cache.InvalidateFeed(ctx)
	return created, nil
}

func (r *likeRepository) Unlike(ctx context.Context, userID, photoID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND photo_id = ?", userID, photoID).
		Delete(&models.Like{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePhoto(ctx, photoID)
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *likeRepository) IsLiked(ctx context.Context, userID, photoID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND photo_id = ?", userID, photoID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *likeRepository) CountByPhoto(ctx context.Context, photoID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("photo_id = ?", photoID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// Fans returns the users who currently hold a like on the photo.
func (r *likeRepository) Fans(ctx context.Context, photoID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN likes ON likes.user_id = users.id").
		Where("likes.photo_id = ?", photoID).
		Order("likes.created_at ASC").
		Find(&users).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *likeRepository) ListByUser(ctx context.Context, userID uint) ([]*models.Like, error) {
	var likes []*models.Like
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&likes).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return likes, nil
}
