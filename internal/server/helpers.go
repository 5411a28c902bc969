package server

import (
	"errors"
	"strconv"

	"gratitude/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseID parses a route parameter as a uint ID. When the value is not a
// positive integer it writes a 400 response and returns written=true.
func parseID(c *fiber.Ctx, param string) (uint, bool) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid entry ID"))
		return 0, true
	}
	return uint(id), false
}

// respondServiceError maps AppError codes from the service/repository layers
// to HTTP statuses. Anything unrecognized becomes a 500.
func respondServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "VALIDATION_ERROR":
			return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		case "NOT_FOUND":
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		case "UNAUTHORIZED":
			return models.RespondWithError(c, fiber.StatusUnauthorized, appErr)
		}
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError,
		models.NewInternalError(err))
}

// currentUserID reads the authenticated user's ID set by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}
