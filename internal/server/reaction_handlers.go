package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SetReaction handles PUT /api/posts/:id/reaction
func (s *Server) SetReaction(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Kind string `json:"kind"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result, err := s.reactionService.SetReaction(c.Context(), postID, currentUserID(c), req.Kind)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(result)
}
