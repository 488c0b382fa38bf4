package server

import (
	"github.com/gofiber/fiber/v2"
)

// ToggleBookmark handles POST /api/posts/:id/bookmark
func (s *Server) ToggleBookmark(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	bookmarked, err := s.bookmarkService.Toggle(c.Context(), postID, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"bookmarked": bookmarked})
}
