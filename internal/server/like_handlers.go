package server

import (
	"github.com/gofiber/fiber/v2"
)

// LikePhoto handles POST /api/photos/:id/like. Liking an already-liked
// photo succeeds without creating a second like.
func (s *Server) LikePhoto(c *fiber.Ctx) error {
	photoID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	photo, err := s.likeService.LikePhoto(c.Context(), currentUserID(c), photoID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(photo)
}

// UnlikePhoto handles POST /api/photos/:id/unlike. Unliking a photo the
// actor never liked is a no-op.
func (s *Server) UnlikePhoto(c *fiber.Ctx) error {
	photoID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	photo, err := s.likeService.UnlikePhoto(c.Context(), currentUserID(c), photoID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(photo)
}

// GetFans handles GET /api/photos/:id/fans
func (s *Server) GetFans(c *fiber.Ctx) error {
	photoID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	fans, err := s.likeService.Fans(c.Context(), photoID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"fans": fans})
}

// GetMyLikes handles GET /api/me/likes
func (s *Server) GetMyLikes(c *fiber.Ctx) error {
	views, err := s.feedService.MyLikes(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"photos": views})
}
