package repository

import (
	"context"
	"errors"

	"photogram/internal/cache"
	"photogram/internal/models"
	"photogram/internal/observability"

	"gorm.io/gorm"
)

// CommentRepository defines interface for comment operations.
// Comments are write-once: there is no update, and deletion happens only as
// part of the photo cascade in PhotoRepository.Delete.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListByPhoto(ctx context.Context, photoID uint) ([]*models.Comment, error)
	CountByPhoto(ctx context.Context, photoID uint) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	observability.CommentsCreated.Inc()
	cache.InvalidatePhoto(ctx, comment.PhotoID)
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).Preload("User").First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

// ListByPhoto returns the photo's comments in creation order.
func (r *commentRepository) ListByPhoto(
	ctx context.Context,
	photoID uint,
) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("photo_id = ?", photoID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

func (r *commentRepository) CountByPhoto(ctx context.Context, photoID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("photo_id = ?", photoID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
