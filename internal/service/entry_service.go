// Package service contains business logic orchestrating validation and persistence.
package service

import (
	"context"

	"gratitude/internal/cache"
	"gratitude/internal/models"
	"gratitude/internal/repository"
	"gratitude/internal/validation"
)

// EntryService orchestrates entry validation and owner-scoped persistence.
type EntryService struct {
	entryRepo repository.EntryRepository
}

// NewEntryService creates a new entry service.
func NewEntryService(entryRepo repository.EntryRepository) *EntryService {
	return &EntryService{entryRepo: entryRepo}
}

// MoodCount is one bar of the dashboard mood histogram.
type MoodCount struct {
	Mood  models.Mood `json:"mood"`
	Label string      `json:"label"`
	Count int64       `json:"count"`
}

// DashboardStats aggregates a user's journal for the dashboard view.
type DashboardStats struct {
	TotalEntries  int64                   `json:"total_entries"`
	RecentEntries []models.GratitudeEntry `json:"recent_entries"`
	MoodHistogram []MoodCount             `json:"mood_histogram"`
}

// CreateEntry validates the submitted form and persists a new entry owned by
// userID. On validation failure nothing is persisted and the returned error
// carries the field-scoped errors; warnings are advisory and returned either way.
func (s *EntryService) CreateEntry(ctx context.Context, userID uint, form validation.EntryForm) (*models.GratitudeEntry, []models.FieldError, error) {
	res := validation.ValidateEntry(form)
	if !res.Valid() {
		return nil, res.Warnings, models.NewFieldValidationError(res.Errors)
	}

	entry := &models.GratitudeEntry{
		UserID:    userID,
		Title:     res.Title,
		Content:   res.Content,
		Mood:      res.Mood,
		Tags:      res.Tags,
		IsPrivate: res.IsPrivate,
	}
	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, res.Warnings, err
	}
	return entry, res.Warnings, nil
}

// GetEntry returns the entry if it exists and belongs to userID.
func (s *EntryService) GetEntry(ctx context.Context, userID, entryID uint) (*models.GratitudeEntry, error) {
	return s.entryRepo.GetByID(ctx, userID, entryID)
}

// ListEntries returns one page of the user's entries, newest first.
func (s *EntryService) ListEntries(ctx context.Context, userID uint, filter repository.EntryFilter, page int) (*repository.EntryPage, error) {
	return s.entryRepo.List(ctx, userID, filter, page)
}

// UpdateEntry validates the form and applies it to an entry owned by userID.
// The owner never changes; created_at is left untouched and updated_at is
// refreshed by the persistence layer.
func (s *EntryService) UpdateEntry(ctx context.Context, userID, entryID uint, form validation.EntryForm) (*models.GratitudeEntry, []models.FieldError, error) {
	entry, err := s.entryRepo.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, nil, err
	}

	res := validation.ValidateEntry(form)
	if !res.Valid() {
		return nil, res.Warnings, models.NewFieldValidationError(res.Errors)
	}

	entry.Title = res.Title
	entry.Content = res.Content
	entry.Mood = res.Mood
	entry.Tags = res.Tags
	entry.IsPrivate = res.IsPrivate

	if err := s.entryRepo.Update(ctx, userID, entry); err != nil {
		return nil, res.Warnings, err
	}
	return entry, res.Warnings, nil
}

// DeleteEntry permanently removes an entry owned by userID.
func (s *EntryService) DeleteEntry(ctx context.Context, userID, entryID uint) error {
	return s.entryRepo.Delete(ctx, userID, entryID)
}

// Dashboard computes the user's aggregates: total entry count, the three
// most recent entries, and a zero-inclusive per-mood histogram.
func (s *EntryService) Dashboard(ctx context.Context, userID uint) (*DashboardStats, error) {
	var stats DashboardStats
	err := cache.Aside(ctx, cache.DashboardKey(userID), &stats, cache.DashboardTTL, func() error {
		total, err := s.entryRepo.CountByOwner(ctx, userID)
		if err != nil {
			return err
		}

		recent, err := s.entryRepo.Recent(ctx, userID, 3)
		if err != nil {
			return err
		}

		counts, err := s.entryRepo.MoodCounts(ctx, userID)
		if err != nil {
			return err
		}

		histogram := make([]MoodCount, 0, len(models.Moods()))
		for _, mood := range models.Moods() {
			histogram = append(histogram, MoodCount{
				Mood:  mood,
				Label: mood.Label(),
				Count: counts[mood],
			})
		}

		stats = DashboardStats{
			TotalEntries:  total,
			RecentEntries: recent,
			MoodHistogram: histogram,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
