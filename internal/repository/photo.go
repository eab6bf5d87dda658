package repository

import (
	"context"
	"errors"

	"photogram/internal/cache"
	"photogram/internal/models"
	"photogram/internal/observability"

	"gorm.io/gorm"
)

// PhotoRepository defines the interface for photo data operations.
type PhotoRepository interface {
	Create(ctx context.Context, photo *models.Photo) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Photo, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Photo, error)
	List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Photo, error)
	ListLikedBy(ctx context.Context, userID uint) ([]*models.Photo, error)
	Update(ctx context.Context, photo *models.Photo) error
	Delete(ctx context.Context, id uint) error
}

// photoRepository implements PhotoRepository
type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository creates a new photo repository
func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) Create(ctx context.Context, photo *models.Photo) error {
	if err := r.db.WithContext(ctx).Create(photo).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *photoRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Photo, error) {
	var photo models.Photo
	err := r.applyPhotoDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		First(&photo, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Photo", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &photo, nil
}

func (r *photoRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Photo, error) {
	var photos []*models.Photo
	err := r.applyPhotoDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Where("user_id = ?", userID).
		Order("photos.created_at ASC, photos.id ASC").
		Limit(limit).
		Offset(offset).
		Find(&photos).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return photos, nil
}

// List returns photos in persisted existence order.
func (r *photoRepository) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Photo, error) {
	var photos []*models.Photo
	err := r.applyPhotoDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Order("photos.created_at ASC, photos.id ASC").
		Limit(limit).
		Offset(offset).
		Find(&photos).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return photos, nil
}

// ListLikedBy returns the photos the given user currently likes, in the same
// existence order as List.
func (r *photoRepository) ListLikedBy(ctx context.Context, userID uint) ([]*models.Photo, error) {
	var photos []*models.Photo
	err := r.applyPhotoDetails(r.db.WithContext(ctx), userID).
		Preload("User").
		Joins("JOIN likes ON likes.photo_id = photos.id AND likes.user_id = ?", userID).
		Order("photos.created_at ASC, photos.id ASC").
		Find(&photos).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return photos, nil
}

// applyPhotoDetails adds subqueries to fetch counts and liked status in a single query.
func (r *photoRepository) applyPhotoDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "photos.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.photo_id = photos.id) as comments_count, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.photo_id = photos.id) as likes_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM likes WHERE likes.photo_id = photos.id AND likes.user_id = ?) as liked", currentUserID)
	}

	return db.Select(selectQuery + ", false as liked")
}

func (r *photoRepository) Update(ctx context.Context, photo *models.Photo) error {
	err := r.db.WithContext(ctx).Model(&models.Photo{ID: photo.ID}).
		Updates(map[string]interface{}{
			"caption":   photo.Caption,
			"image_url": photo.ImageURL,
		}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePhoto(ctx, photo.ID)
	cache.InvalidateFeed(ctx)
	return nil
}

// Delete removes the photo together with every comment and like that
// references it, in one transaction.
func (r *photoRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("photo_id = ?", id).Delete(&models.Comment{})
		if res.Error != nil {
			return res.Error
		}
		observability.PhotoCascadeDeletedRows.WithLabelValues("comments").Add(float64(res.RowsAffected))

		res = tx.Where("photo_id = ?", id).Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		observability.PhotoCascadeDeletedRows.WithLabelValues("likes").Add(float64(res.RowsAffected))

		return tx.Delete(&models.Photo{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePhoto(ctx, id)
	cache.InvalidateFeed(ctx)
	return nil
}
