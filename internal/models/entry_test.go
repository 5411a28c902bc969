package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoodValid(t *testing.T) {
	for _, mood := range Moods() {
		assert.True(t, mood.Valid(), "%s should be valid", mood)
	}
	assert.False(t, Mood("ecstatic").Valid())
	assert.False(t, Mood("").Valid())
	assert.True(t, DefaultMood.Valid())
}

func TestMoodLabel(t *testing.T) {
	assert.Equal(t, "😊 Good", MoodGood.Label())
	assert.Equal(t, "😰 Challenging", MoodChallenging.Label())
	// Unknown moods fall back to the raw value instead of panicking.
	assert.Equal(t, "weird", Mood("weird").Label())
}

func TestEntryTagList(t *testing.T) {
	entry := &GratitudeEntry{Tags: "family, small wins, food"}
	assert.Equal(t, []string{"family", "small wins", "food"}, entry.TagList())

	entry.Tags = ""
	assert.Nil(t, entry.TagList())

	entry.Tags = " , ,  "
	assert.Nil(t, entry.TagList())
}
