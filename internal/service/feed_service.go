package service

import (
	"context"
	"time"

	"photogram/internal/cache"
	"photogram/internal/models"
	"photogram/internal/repository"
)

// FeedService assembles the photo feed: every photo with its owner,
// like tallies, and full comment threads.
type FeedService struct {
	photoRepo   repository.PhotoRepository
	commentRepo repository.CommentRepository
}

// PhotoView is a feed entry. It is a read-only composition and carries
// no entity state of its own.
type PhotoView struct {
	ID            uint          `json:"id"`
	Caption       string        `json:"caption"`
	ImageURL      string        `json:"image_url"`
	OwnerID       uint          `json:"owner_id"`
	OwnerUsername string        `json:"owner_username"`
	LikesCount    int           `json:"likes_count"`
	Liked         bool          `json:"liked"`
	CommentsCount int           `json:"comments_count"`
	Comments      []CommentView `json:"comments"`
	CreatedAt     time.Time     `json:"created_at"`
}

// CommentView is a comment as shown in the feed.
type CommentView struct {
	ID             uint      `json:"id"`
	Body           string    `json:"body"`
	AuthorID       uint      `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	CreatedAt      time.Time `json:"created_at"`
}

type ListFeedInput struct {
	Limit         int
	Offset        int
	CurrentUserID uint
}

func NewFeedService(photoRepo repository.PhotoRepository, commentRepo repository.CommentRepository) *FeedService {
	return &FeedService{photoRepo: photoRepo, commentRepo: commentRepo}
}

// ListFeed returns the feed oldest-first. The anonymous first page is
// cache-backed; authenticated requests always hit the store so the
// liked flag reflects the caller.
func (s *FeedService) ListFeed(ctx context.Context, in ListFeedInput) ([]PhotoView, error) {
	limit := in.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	if in.CurrentUserID == 0 && in.Offset == 0 && limit == 20 {
		var views []PhotoView
		err := cache.Aside(ctx, cache.FeedKey(), &views, cache.FeedTTL, func() error {
			var fetchErr error
			views, fetchErr = s.buildFeed(ctx, limit, 0, 0)
			return fetchErr
		})
		return views, err
	}

	return s.buildFeed(ctx, limit, in.Offset, in.CurrentUserID)
}

// MyLikes returns feed entries for the photos userID has liked.
func (s *FeedService) MyLikes(ctx context.Context, userID uint) ([]PhotoView, error) {
	photos, err := s.photoRepo.ListLikedBy(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.compose(ctx, photos)
}

func (s *FeedService) buildFeed(ctx context.Context, limit, offset int, currentUserID uint) ([]PhotoView, error) {
	photos, err := s.photoRepo.List(ctx, limit, offset, currentUserID)
	if err != nil {
		return nil, err
	}
	return s.compose(ctx, photos)
}

func (s *FeedService) compose(ctx context.Context, photos []*models.Photo) ([]PhotoView, error) {
	views := make([]PhotoView, 0, len(photos))
	for _, photo := range photos {
		comments, err := s.commentRepo.ListByPhoto(ctx, photo.ID)
		if err != nil {
			return nil, err
		}

		commentViews := make([]CommentView, 0, len(comments))
		for _, c := range comments {
			commentViews = append(commentViews, CommentView{
				ID:             c.ID,
				Body:           c.Body,
				AuthorID:       c.UserID,
				AuthorUsername: c.User.Username,
				CreatedAt:      c.CreatedAt,
			})
		}

		views = append(views, PhotoView{
			ID:            photo.ID,
			Caption:       photo.Caption,
			ImageURL:      photo.ImageURL,
			OwnerID:       photo.UserID,
			OwnerUsername: photo.User.Username,
			LikesCount:    photo.LikesCount,
			Liked:         photo.Liked,
			CommentsCount: photo.CommentsCount,
			Comments:      commentViews,
			CreatedAt:     photo.CreatedAt,
		})
	}
	return views, nil
}
