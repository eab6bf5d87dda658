package service

import (
	"context"
	"testing"

	"photogram/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	listFn          func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "alice"}, nil
		},
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		listFn:          func(_ context.Context, _, _ int) ([]models.User, error) { return nil, nil },
	}
}

// photoRepoStub is a stub for repository.PhotoRepository.
type photoRepoStub struct {
	createFn      func(context.Context, *models.Photo) error
	getByIDFn     func(context.Context, uint, uint) (*models.Photo, error)
	getByUserIDFn func(context.Context, uint, int, int, uint) ([]*models.Photo, error)
	listFn        func(context.Context, int, int, uint) ([]*models.Photo, error)
	listLikedByFn func(context.Context, uint) ([]*models.Photo, error)
	updateFn      func(context.Context, *models.Photo) error
	deleteFn      func(context.Context, uint) error
}

func (s *photoRepoStub) Create(ctx context.Context, photo *models.Photo) error {
	return s.createFn(ctx, photo)
}
func (s *photoRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Photo, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *photoRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Photo, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset, currentUserID)
}
func (s *photoRepoStub) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Photo, error) {
	return s.listFn(ctx, limit, offset, currentUserID)
}
func (s *photoRepoStub) ListLikedBy(ctx context.Context, userID uint) ([]*models.Photo, error) {
	return s.listLikedByFn(ctx, userID)
}
func (s *photoRepoStub) Update(ctx context.Context, photo *models.Photo) error {
	return s.updateFn(ctx, photo)
}
func (s *photoRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPhotoRepo() *photoRepoStub {
	return &photoRepoStub{
		createFn: func(_ context.Context, p *models.Photo) error {
			p.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Photo, error) {
			return &models.Photo{ID: id, UserID: 1, ImageURL: "https://example.com/p.jpg"}, nil
		},
		getByUserIDFn: func(_ context.Context, _ uint, _, _ int, _ uint) ([]*models.Photo, error) {
			return nil, nil
		},
		listFn:        func(_ context.Context, _, _ int, _ uint) ([]*models.Photo, error) { return nil, nil },
		listLikedByFn: func(_ context.Context, _ uint) ([]*models.Photo, error) { return nil, nil },
		updateFn:      func(_ context.Context, _ *models.Photo) error { return nil },
		deleteFn:      func(_ context.Context, _ uint) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn       func(context.Context, *models.Comment) error
	getByIDFn      func(context.Context, uint) (*models.Comment, error)
	listByPhotoFn  func(context.Context, uint) ([]*models.Comment, error)
	countByPhotoFn func(context.Context, uint) (int64, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPhoto(ctx context.Context, photoID uint) ([]*models.Comment, error) {
	return s.listByPhotoFn(ctx, photoID)
}
func (s *commentRepoStub) CountByPhoto(ctx context.Context, photoID uint) (int64, error) {
	return s.countByPhotoFn(ctx, photoID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, c *models.Comment) error {
			c.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id}, nil
		},
		listByPhotoFn:  func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		countByPhotoFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// likeRepoStub is a stub for repository.LikeRepository.
type likeRepoStub struct {
	likeFn         func(context.Context, uint, uint) (bool, error)
	unlikeFn       func(context.Context, uint, uint) error
	isLikedFn      func(context.Context, uint, uint) (bool, error)
	countByPhotoFn func(context.Context, uint) (int64, error)
	fansFn         func(context.Context, uint) ([]models.User, error)
	listByUserFn   func(context.Context, uint) ([]*models.Like, error)
}

func (s *likeRepoStub) Like(ctx context.Context, userID, photoID uint) (bool, error) {
	return s.likeFn(ctx, userID, photoID)
}
func (s *likeRepoStub) Unlike(ctx context.Context, userID, photoID uint) error {
	return s.unlikeFn(ctx, userID, photoID)
}
func (s *likeRepoStub) IsLiked(ctx context.Context, userID, photoID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, photoID)
}
func (s *likeRepoStub) CountByPhoto(ctx context.Context, photoID uint) (int64, error) {
	return s.countByPhotoFn(ctx, photoID)
}
func (s *likeRepoStub) Fans(ctx context.Context, photoID uint) ([]models.User, error) {
	return s.fansFn(ctx, photoID)
}
func (s *likeRepoStub) ListByUser(ctx context.Context, userID uint) ([]*models.Like, error) {
	return s.listByUserFn(ctx, userID)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		likeFn:         func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		unlikeFn:       func(_ context.Context, _, _ uint) error { return nil },
		isLikedFn:      func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		countByPhotoFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		fansFn:         func(_ context.Context, _ uint) ([]models.User, error) { return nil, nil },
		listByUserFn:   func(_ context.Context, _ uint) ([]*models.Like, error) { return nil, nil },
	}
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok, "expected *models.AppError, got %T", err)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func assertUnauthorizedError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok, "expected *models.AppError, got %T", err)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}
