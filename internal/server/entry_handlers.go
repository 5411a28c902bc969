package server

import (
	"gratitude/internal/middleware"
	"gratitude/internal/models"
	"gratitude/internal/repository"
	"gratitude/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CreateEntry handles POST /api/entries.
func (s *Server) CreateEntry(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var form validation.EntryForm
	if err := c.BodyParser(&form); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	entry, warnings, err := s.entryService.CreateEntry(c.UserContext(), userID, form)
	if err != nil {
		return respondServiceError(c, err)
	}

	middleware.EntriesCreated.WithLabelValues(string(entry.Mood)).Inc()
	middleware.Logger.InfoContext(c.UserContext(), "entry created",
		"entry_id", entry.ID, "mood", entry.Mood)

	resp := fiber.Map{
		"message": "Gratitude entry saved.",
		"entry":   entry,
	}
	if len(warnings) > 0 {
		resp["warnings"] = warnings
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetEntries handles GET /api/entries with optional ?q=, ?mood= and ?page=.
func (s *Server) GetEntries(c *fiber.Ctx) error {
	userID := currentUserID(c)

	filter := repository.EntryFilter{
		Search: c.Query("q"),
	}
	if moodParam := c.Query("mood"); moodParam != "" {
		mood := models.Mood(moodParam)
		if !mood.Valid() {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid mood filter"))
		}
		filter.Mood = mood
	}

	page := c.QueryInt("page", 1)

	result, err := s.entryService.ListEntries(c.UserContext(), userID, filter, page)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"entries":     result.Entries,
		"total":       result.Total,
		"page":        result.Page,
		"page_size":   repository.PageSize,
		"total_pages": result.TotalPages,
	})
}

// GetEntry handles GET /api/entries/:id.
func (s *Server) GetEntry(c *fiber.Ctx) error {
	userID := currentUserID(c)

	id, written := parseID(c, "id")
	if written {
		return nil
	}

	entry, err := s.entryService.GetEntry(c.UserContext(), userID, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"entry": entry,
		"tags":  entry.TagList(),
	})
}

// UpdateEntry handles PUT /api/entries/:id.
func (s *Server) UpdateEntry(c *fiber.Ctx) error {
	userID := currentUserID(c)

	id, written := parseID(c, "id")
	if written {
		return nil
	}

	var form validation.EntryForm
	if err := c.BodyParser(&form); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	entry, warnings, err := s.entryService.UpdateEntry(c.UserContext(), userID, id, form)
	if err != nil {
		return respondServiceError(c, err)
	}

	resp := fiber.Map{
		"message": "Gratitude entry updated.",
		"entry":   entry,
	}
	if len(warnings) > 0 {
		resp["warnings"] = warnings
	}
	return c.JSON(resp)
}

// DeleteEntry handles DELETE /api/entries/:id. Deletion is permanent.
func (s *Server) DeleteEntry(c *fiber.Ctx) error {
	userID := currentUserID(c)

	id, written := parseID(c, "id")
	if written {
		return nil
	}

	if err := s.entryService.DeleteEntry(c.UserContext(), userID, id); err != nil {
		return respondServiceError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "entry deleted", "entry_id", id)

	return c.JSON(fiber.Map{
		"message": "Gratitude entry deleted.",
	})
}

// GetDashboard handles GET /api/dashboard.
func (s *Server) GetDashboard(c *fiber.Ctx) error {
	userID := currentUserID(c)

	stats, err := s.entryService.Dashboard(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(stats)
}

// GetMoods handles GET /api/moods. Public: clients use it to render the
// mood selector without hardcoding the choices.
func (s *Server) GetMoods(c *fiber.Ctx) error {
	moods := models.Moods()
	choices := make([]fiber.Map, 0, len(moods))
	for _, mood := range moods {
		choices = append(choices, fiber.Map{
			"value": mood,
			"label": mood.Label(),
		})
	}
	return c.JSON(fiber.Map{
		"moods":   choices,
		"default": models.DefaultMood,
	})
}
