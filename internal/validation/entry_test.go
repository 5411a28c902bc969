package validation

import (
	"strings"
	"testing"

	"gratitude/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hasCode(errs []models.FieldError, code string) bool {
	for _, e := range errs {
		if e.Code == code {
			return true
		}
	}
	return false
}

func TestValidateEntryMinimalValid(t *testing.T) {
	res := ValidateEntry(EntryForm{Content: "I am thankful for my morning coffee."})

	require.True(t, res.Valid(), "unexpected errors: %v", res.Errors)
	assert.Equal(t, models.MoodGood, res.Mood)
	assert.True(t, res.IsPrivate)
	assert.Empty(t, res.Title)
	assert.Empty(t, res.Tags)
	assert.Empty(t, res.Warnings)
}

func TestValidateEntryContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    string
	}{
		{"empty", "", CodeContentRequired},
		{"whitespace only", "   \n\t  ", CodeContentRequired},
		{"too short", "thanks", CodeContentTooShort},
		{"too long", strings.Repeat("grateful ", 600), CodeContentTooLong},
		{"one repeated char", strings.Repeat("a", 20), CodeContentNotMeaningful},
		{"two distinct chars", strings.Repeat("ab", 10), CodeContentNotMeaningful},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateEntry(EntryForm{Content: tt.content})
			assert.False(t, res.Valid())
			assert.True(t, hasCode(res.Errors, tt.code), "want %s in %v", tt.code, res.Errors)
		})
	}

	// Three distinct characters is the floor for meaningful content.
	res := ValidateEntry(EntryForm{Content: strings.Repeat("abc", 4)})
	assert.True(t, res.Valid(), "unexpected errors: %v", res.Errors)
}

func TestValidateEntryTitle(t *testing.T) {
	content := "Spent the evening reading in the garden."

	res := ValidateEntry(EntryForm{Title: "ab", Content: content})
	assert.True(t, hasCode(res.Errors, CodeTitleTooShort))

	res = ValidateEntry(EntryForm{Title: strings.Repeat("x", 201), Content: content})
	assert.True(t, hasCode(res.Errors, CodeTitleTooLong))

	// Exactly at the bounds passes.
	res = ValidateEntry(EntryForm{Title: "abc", Content: content})
	assert.True(t, res.Valid(), "unexpected errors: %v", res.Errors)
	res = ValidateEntry(EntryForm{Title: strings.Repeat("x", 200), Content: content})
	assert.True(t, res.Valid(), "unexpected errors: %v", res.Errors)

	// Surrounding whitespace is trimmed before the length check.
	res = ValidateEntry(EntryForm{Title: "  A quiet day  ", Content: content})
	require.True(t, res.Valid())
	assert.Equal(t, "A quiet day", res.Title)
}

func TestValidateEntryMood(t *testing.T) {
	content := "Grateful for a long walk with an old friend."

	res := ValidateEntry(EntryForm{Content: content, Mood: "excellent"})
	require.True(t, res.Valid())
	assert.Equal(t, models.MoodExcellent, res.Mood)

	res = ValidateEntry(EntryForm{Content: content, Mood: "ecstatic"})
	assert.False(t, res.Valid())
	assert.True(t, hasCode(res.Errors, CodeMoodInvalid))

	// Omitted mood falls back to the default.
	res = ValidateEntry(EntryForm{Content: content})
	require.True(t, res.Valid())
	assert.Equal(t, models.DefaultMood, res.Mood)
}

func TestValidateEntryTags(t *testing.T) {
	content := "Fresh bread from the bakery around the corner."

	res := ValidateEntry(EntryForm{Content: content, Tags: " family ,  small wins ,, food "})
	require.True(t, res.Valid(), "unexpected errors: %v", res.Errors)
	assert.Equal(t, []string{"family", "small wins", "food"}, res.TagList)
	assert.Equal(t, "family, small wins, food", res.Tags)

	// Canonical form round-trips through the parser, order preserved.
	assert.Equal(t, res.TagList, ParseTags(res.Tags))

	res = ValidateEntry(EntryForm{Content: content, Tags: strings.Repeat("x", 31)})
	assert.True(t, hasCode(res.Errors, CodeTagTooLong))

	res = ValidateEntry(EntryForm{Content: content, Tags: "good-vibes"})
	assert.True(t, hasCode(res.Errors, CodeTagInvalidChars))

	res = ValidateEntry(EntryForm{Content: content, Tags: "a,b,c,d,e,f,g,h,i,j,k"})
	assert.True(t, hasCode(res.Errors, CodeTooManyTags))

	res = ValidateEntry(EntryForm{Content: content, Tags: "  ,  , "})
	require.True(t, res.Valid())
	assert.Empty(t, res.TagList)
	assert.Empty(t, res.Tags)
}

func TestValidateEntryIsPrivate(t *testing.T) {
	content := "The garden is finally blooming this week."

	shared := false
	res := ValidateEntry(EntryForm{Content: content, IsPrivate: &shared})
	require.True(t, res.Valid())
	assert.False(t, res.IsPrivate)

	res = ValidateEntry(EntryForm{Content: content})
	require.True(t, res.Valid())
	assert.True(t, res.IsPrivate, "entries default to private")
}

func TestValidateEntryTitleEchoWarning(t *testing.T) {
	res := ValidateEntry(EntryForm{
		Title:   "Morning coffee",
		Content: "Morning coffee on the porch made today feel slower and kinder.",
	})

	// The echo is advisory: the entry is still valid.
	require.True(t, res.Valid(), "unexpected errors: %v", res.Errors)
	assert.True(t, hasCode(res.Warnings, CodeTitleEchoesContent))

	// A title that only appears deep in the content does not warn.
	res = ValidateEntry(EntryForm{
		Title:   "kinder",
		Content: "Morning coffee on the porch today made everything feel slower and also considerably kinder.",
	})
	require.True(t, res.Valid())
	assert.False(t, hasCode(res.Warnings, CodeTitleEchoesContent))
}
