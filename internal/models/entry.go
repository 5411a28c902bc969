package models

import (
	"strings"
	"time"
)

// Mood is the emotional-state tag attached to an entry.
type Mood string

// The five fixed moods, from best to hardest day.
const (
	MoodExcellent   Mood = "excellent"
	MoodGood        Mood = "good"
	MoodOkay        Mood = "okay"
	MoodDifficult   Mood = "difficult"
	MoodChallenging Mood = "challenging"
)

// DefaultMood is applied when an entry is submitted without a mood.
const DefaultMood = MoodGood

// Moods returns all moods in display order.
func Moods() []Mood {
	return []Mood{MoodExcellent, MoodGood, MoodOkay, MoodDifficult, MoodChallenging}
}

// Valid reports whether m is one of the five known moods.
func (m Mood) Valid() bool {
	switch m {
	case MoodExcellent, MoodGood, MoodOkay, MoodDifficult, MoodChallenging:
		return true
	}
	return false
}

// Label returns the user-facing label for the mood.
func (m Mood) Label() string {
	switch m {
	case MoodExcellent:
		return "😄 Excellent"
	case MoodGood:
		return "😊 Good"
	case MoodOkay:
		return "😐 Okay"
	case MoodDifficult:
		return "😔 Difficult"
	case MoodChallenging:
		return "😰 Challenging"
	}
	return string(m)
}

// GratitudeEntry is a single journal record owned by exactly one user.
// Entries are hard-deleted; there is no soft-delete column on purpose.
type GratitudeEntry struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `gorm:"foreignKey:UserID" json:"-"`
	Title   string `json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
	Mood    Mood   `gorm:"type:varchar(20);not null" json:"mood"`
	// Tags is the canonical comma-joined form; use TagList for the parsed view.
	Tags      string    `json:"tags"`
	IsPrivate bool      `gorm:"not null" json:"is_private"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TagList returns the entry's tags as an ordered list, skipping empty segments.
func (e *GratitudeEntry) TagList() []string {
	if strings.TrimSpace(e.Tags) == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(e.Tags, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
