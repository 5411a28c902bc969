// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"gratitude/internal/cache"
	"gratitude/internal/models"

	"gorm.io/gorm"
)

// PageSize is the fixed number of entries per listing page.
const PageSize = 10

// EntryFilter holds optional listing filters; zero values mean "no filter".
// Search and mood combine with AND when both are set.
type EntryFilter struct {
	Search string
	Mood   models.Mood
}

// EntryPage is one page of an owner's entries.
type EntryPage struct {
	Entries []models.GratitudeEntry
	Total   int64
	// Page is the effective page after clamping to the valid range.
	Page       int
	TotalPages int
}

// EntryRepository defines the interface for entry data operations.
// Every read/update/delete is scoped to the owning user: an entry ID that
// exists but belongs to someone else behaves exactly like a missing ID.
type EntryRepository interface {
	Create(ctx context.Context, entry *models.GratitudeEntry) error
	GetByID(ctx context.Context, ownerID, id uint) (*models.GratitudeEntry, error)
	List(ctx context.Context, ownerID uint, filter EntryFilter, page int) (*EntryPage, error)
	Update(ctx context.Context, ownerID uint, entry *models.GratitudeEntry) error
	Delete(ctx context.Context, ownerID, id uint) error
	CountByOwner(ctx context.Context, ownerID uint) (int64, error)
	Recent(ctx context.Context, ownerID uint, limit int) ([]models.GratitudeEntry, error)
	MoodCounts(ctx context.Context, ownerID uint) (map[models.Mood]int64, error)
}

// entryRepository implements EntryRepository
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new entry repository
func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) Create(ctx context.Context, entry *models.GratitudeEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateDashboard(ctx, entry.UserID)
	return nil
}

func (r *entryRepository) GetByID(ctx context.Context, ownerID, id uint) (*models.GratitudeEntry, error) {
	var entry models.GratitudeEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		First(&entry, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Uniform signal: not-owned and nonexistent are indistinguishable.
			return nil, models.NewNotFoundError("Entry", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &entry, nil
}

func (r *entryRepository) List(ctx context.Context, ownerID uint, filter EntryFilter, page int) (*EntryPage, error) {
	base := r.applyFilter(r.db.WithContext(ctx).Model(&models.GratitudeEntry{}).Where("user_id = ?", ownerID), filter)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	totalPages := int((total + PageSize - 1) / PageSize)

	// Out-of-range pages clamp to the nearest valid page instead of erroring.
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	var entries []models.GratitudeEntry
	if total > 0 {
		err := base.
			Order("created_at DESC").
			Limit(PageSize).
			Offset((page - 1) * PageSize).
			Find(&entries).Error
		if err != nil {
			return nil, models.NewInternalError(err)
		}
	}

	return &EntryPage{
		Entries:    entries,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// applyFilter adds the optional search and mood predicates.
// LOWER(...) LIKE keeps the substring match case-insensitive on both
// PostgreSQL and the sqlite driver used in tests.
func (r *entryRepository) applyFilter(db *gorm.DB, filter EntryFilter) *gorm.DB {
	if q := strings.TrimSpace(filter.Search); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", like, like)
	}
	if filter.Mood != "" {
		db = db.Where("mood = ?", filter.Mood)
	}
	return db
}

func (r *entryRepository) Update(ctx context.Context, ownerID uint, entry *models.GratitudeEntry) error {
	if entry.UserID != ownerID {
		return models.NewNotFoundError("Entry", entry.ID)
	}
	if err := r.db.WithContext(ctx).Save(entry).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateDashboard(ctx, ownerID)
	return nil
}

func (r *entryRepository) Delete(ctx context.Context, ownerID, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.GratitudeEntry{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Entry", id)
	}
	cache.InvalidateDashboard(ctx, ownerID)
	return nil
}

func (r *entryRepository) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.GratitudeEntry{}).
		Where("user_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *entryRepository) Recent(ctx context.Context, ownerID uint, limit int) ([]models.GratitudeEntry, error) {
	var entries []models.GratitudeEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return entries, nil
}

func (r *entryRepository) MoodCounts(ctx context.Context, ownerID uint) (map[models.Mood]int64, error) {
	var rows []struct {
		Mood  models.Mood
		Count int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.GratitudeEntry{}).
		Select("mood, COUNT(*) as count").
		Where("user_id = ?", ownerID).
		Group("mood").
		Scan(&rows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	counts := make(map[models.Mood]int64, len(rows))
	for _, row := range rows {
		counts[row.Mood] = row.Count
	}
	return counts, nil
}
