package server

import (
	"strings"

	"gratitude/internal/models"
	"gratitude/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// UpdateProfileRequest is the payload for PUT /api/users/me.
type UpdateProfileRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// GetMyProfile handles GET /api/users/me.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userRepo.GetByID(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// UpdateMyProfile handles PUT /api/users/me. Username is immutable; only
// email and display names can change.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userRepo.GetByID(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email != "" && req.Email != user.Email {
		if err := validation.ValidateEmail(req.Email); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(err.Error()))
		}
		if existing, err := s.userRepo.GetByEmail(c.Context(), req.Email); err != nil {
			return respondServiceError(c, err)
		} else if existing != nil && existing.ID != user.ID {
			return models.RespondWithError(c, fiber.StatusConflict,
				models.NewValidationError("Email is already registered"))
		}
		user.Email = req.Email
	}

	user.FirstName = strings.TrimSpace(req.FirstName)
	user.LastName = strings.TrimSpace(req.LastName)

	if err := s.userRepo.Update(c.Context(), user); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated.",
		"user":    user,
	})
}
