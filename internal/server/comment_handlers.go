package server

import (
	"photogram/internal/models"
	"photogram/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/photos/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	photoID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Body string `json:"body"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		UserID:  currentUserID(c),
		PhotoID: photoID,
		Body:    req.Body,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments handles GET /api/photos/:id/comments. Comments come back in
// the order they were written.
func (s *Server) GetComments(c *fiber.Ctx) error {
	photoID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListComments(c.Context(), photoID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"comments": comments})
}
