package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed
func (s *Server) GetFeed(c *fiber.Ctx) error {
	page, err := s.feedService.GetFeed(c.Context(), currentUserID(c), parseFeedParams(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(page)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.feedService.GetPostDetail(c.Context(), postID, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}
