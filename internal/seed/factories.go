// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"gratitude/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls how much data gets generated.
type Options struct {
	Users          int
	EntriesPerUser int
	// MaxDays spreads entry creation times over the past N days.
	MaxDays int
	// SkipBcrypt stores a plaintext marker password instead of hashing,
	// which speeds up large seeds considerably.
	SkipBcrypt bool
	DryRun     bool
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:     db,
		opts:   opts,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		nextID: 1000,
	}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username:  gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:     gofakeit.Email(),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
	}

	if f.opts.SkipBcrypt {
		user.Password = "Password123!demo"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Password123!demo"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s <%s>", user.Username, user.Email)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// gratitudeTopics feeds generated entries so the demo data reads like a
// real journal instead of lorem ipsum.
var gratitudeTopics = []string{
	"morning coffee", "a long walk", "my family", "a good book",
	"sunshine today", "an old friend", "a quiet evening", "fresh bread",
	"finishing a project", "a kind stranger", "music", "the garden",
}

var tagPool = []string{
	"family", "friends", "health", "work", "nature", "food",
	"music", "reading", "exercise", "home", "travel", "small wins",
}

// BuildEntry constructs a plausible gratitude entry for the given user
// without persisting it. Useful for batching.
func (f *Factory) BuildEntry(user *models.User, overrides ...func(*models.GratitudeEntry)) *models.GratitudeEntry {
	topic := gratitudeTopics[f.rng.Intn(len(gratitudeTopics))]
	moods := models.Moods()

	entry := &models.GratitudeEntry{
		UserID:    user.ID,
		Title:     fmt.Sprintf("Grateful for %s", topic),
		Content:   fmt.Sprintf("Today I am grateful for %s. %s", topic, gofakeit.Paragraph(1, 2, 8, " ")),
		Mood:      moods[f.rng.Intn(len(moods))],
		Tags:      f.randomTags(),
		IsPrivate: f.rng.Intn(4) != 0,
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	entry.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)

	for _, override := range overrides {
		override(entry)
	}
	return entry
}

func (f *Factory) randomTags() string {
	count := f.rng.Intn(4)
	if count == 0 {
		return ""
	}
	picked := make([]string, 0, count)
	seen := make(map[string]bool, count)
	for len(picked) < count {
		tag := tagPool[f.rng.Intn(len(tagPool))]
		if !seen[tag] {
			seen[tag] = true
			picked = append(picked, tag)
		}
	}
	return strings.Join(picked, ", ")
}

// CreateEntriesBatch persists multiple entries in a single DB call when possible.
func (f *Factory) CreateEntriesBatch(entries []*models.GratitudeEntry) error {
	if len(entries) == 0 {
		return nil
	}
	if f.opts.DryRun {
		for _, e := range entries {
			f.nextID++
			e.ID = f.nextID
		}
		log.Printf("[dry-run] CreateEntriesBatch: %d entries (no DB write)", len(entries))
		return nil
	}
	return f.db.Create(&entries).Error
}

// Run generates the configured number of users and entries.
func Run(db *gorm.DB, opts Options) error {
	factory := NewFactory(db, opts)

	for i := 0; i < opts.Users; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user %d: %w", i, err)
		}

		entries := make([]*models.GratitudeEntry, 0, opts.EntriesPerUser)
		for j := 0; j < opts.EntriesPerUser; j++ {
			entries = append(entries, factory.BuildEntry(user))
		}
		if err := factory.CreateEntriesBatch(entries); err != nil {
			return fmt.Errorf("seed entries for user %d: %w", user.ID, err)
		}
	}

	log.Printf("Seed complete: %d users, %d entries each", opts.Users, opts.EntriesPerUser)
	return nil
}
