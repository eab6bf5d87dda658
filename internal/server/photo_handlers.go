package server

import (
	"photogram/internal/models"
	"photogram/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/photos. It returns every photo with its owner,
// like tally, and full comment thread, oldest first.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	views, err := s.feedService.ListFeed(c.Context(), service.ListFeedInput{
		Limit:         p.Limit,
		Offset:        p.Offset,
		CurrentUserID: s.viewerID(c),
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"photos": views})
}

// CreatePhoto handles POST /api/photos
func (s *Server) CreatePhoto(c *fiber.Ctx) error {
	var req struct {
		Caption  string `json:"caption"`
		ImageURL string `json:"image_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	photo, err := s.photoService.CreatePhoto(c.Context(), service.CreatePhotoInput{
		UserID:   currentUserID(c),
		Caption:  req.Caption,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(photo)
}

// GetPhoto handles GET /api/photos/:id
func (s *Server) GetPhoto(c *fiber.Ctx) error {
	photoID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	photo, err := s.photoService.GetPhoto(c.Context(), photoID, s.viewerID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(photo)
}

// UpdatePhoto handles PUT /api/photos/:id
func (s *Server) UpdatePhoto(c *fiber.Ctx) error {
	photoID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Caption  *string `json:"caption"`
		ImageURL *string `json:"image_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	photo, err := s.photoService.UpdatePhoto(c.Context(), service.UpdatePhotoInput{
		UserID:   currentUserID(c),
		PhotoID:  photoID,
		Caption:  req.Caption,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(photo)
}

// DeletePhoto handles DELETE /api/photos/:id. Deleting a photo removes its
// comments and likes with it.
func (s *Server) DeletePhoto(c *fiber.Ctx) error {
	photoID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.photoService.DeletePhoto(c.Context(), service.DeletePhotoInput{
		UserID:  currentUserID(c),
		PhotoID: photoID,
	}); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Photo deleted"})
}
