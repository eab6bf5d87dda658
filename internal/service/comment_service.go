package service

import (
	"context"

	"photogram/internal/models"
	"photogram/internal/repository"
	"photogram/internal/sanitize"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	photoRepo   repository.PhotoRepository
	userRepo    repository.UserRepository
}

type CreateCommentInput struct {
	UserID  uint
	PhotoID uint
	Body    string
}

func NewCommentService(commentRepo repository.CommentRepository, photoRepo repository.PhotoRepository, userRepo repository.UserRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, photoRepo: photoRepo, userRepo: userRepo}
}

const maxCommentLen = 10000

// CreateComment validates every field before persisting, so a rejected
// comment names each offending field rather than just the first one.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	fields := map[string]string{}

	body := sanitize.Text(in.Body)
	if body == "" {
		fields["body"] = "can't be blank"
	} else if len(body) > maxCommentLen {
		fields["body"] = "is too long (maximum is 10000 characters)"
	}

	if in.UserID == 0 {
		fields["author"] = "must exist"
	} else if _, err := s.userRepo.GetByID(ctx, in.UserID); err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == "NOT_FOUND" {
			fields["author"] = "must exist"
		} else {
			return nil, err
		}
	}

	if in.PhotoID == 0 {
		fields["photo"] = "must exist"
	} else if _, err := s.photoRepo.GetByID(ctx, in.PhotoID, in.UserID); err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == "NOT_FOUND" {
			fields["photo"] = "must exist"
		} else {
			return nil, err
		}
	}

	if len(fields) > 0 {
		return nil, models.NewFieldValidationError("Comment is invalid", fields)
	}

	comment := &models.Comment{
		Body:    body,
		UserID:  in.UserID,
		PhotoID: in.PhotoID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns a photo's comments in the order they were written.
func (s *CommentService) ListComments(ctx context.Context, photoID uint) ([]*models.Comment, error) {
	if _, err := s.photoRepo.GetByID(ctx, photoID, 0); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPhoto(ctx, photoID)
}
