package server

import (
	"errors"

	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// parseFeedParams extracts page-based pagination and the feed filters from
// query parameters. Out-of-range values are clamped in the service layer.
func parseFeedParams(c *fiber.Ctx) service.FeedParams {
	return service.FeedParams{
		Page:           c.QueryInt("page", 1),
		PerPage:        c.QueryInt("per_page", 0),
		Search:         c.Query("search"),
		AuthorID:       uint(max(c.QueryInt("author_id", 0), 0)),
		BookmarkedOnly: c.QueryBool("bookmarked"),
	}
}

// currentUserID returns the authenticated user's ID set by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	if uid, ok := c.Locals("userID").(uint); ok {
		return uid
	}
	return 0
}

// respondServiceError maps a service-layer error onto the closed error
// taxonomy's HTTP status.
func respondServiceError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusForError(err), err)
}
