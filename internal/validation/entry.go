// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"gratitude/internal/models"
)

// Field-scoped error codes for gratitude entry validation.
const (
	CodeTitleTooShort        = "title_too_short"
	CodeTitleTooLong         = "title_too_long"
	CodeContentRequired      = "content_required"
	CodeContentTooShort      = "content_too_short"
	CodeContentTooLong       = "content_too_long"
	CodeContentNotMeaningful = "content_not_meaningful"
	CodeTagTooLong           = "tag_too_long"
	CodeTagInvalidChars      = "tag_invalid_chars"
	CodeTooManyTags          = "too_many_tags"
	CodeMoodInvalid          = "mood_invalid"
	CodeTitleEchoesContent   = "title_echoes_content"
)

const (
	minTitleLen   = 3
	maxTitleLen   = 200
	minContentLen = 10
	maxContentLen = 5000
	maxTagLen     = 30
	maxTagCount   = 10

	// titleEchoWindow is how far into the content the title is searched for
	// when deciding whether to suggest a more distinct title.
	titleEchoWindow = 50
)

// EntryForm carries the raw user-submitted fields of an entry.
type EntryForm struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Mood      string `json:"mood"`
	Tags      string `json:"tags"`
	IsPrivate *bool  `json:"is_private"`
}

// EntryResult holds the normalized entry fields together with any
// field-scoped errors and non-blocking warnings. It has no side effects;
// persistence happens elsewhere only when Valid reports true.
type EntryResult struct {
	Title     string
	Content   string
	Mood      models.Mood
	Tags      string
	TagList   []string
	IsPrivate bool

	Errors   []models.FieldError
	Warnings []models.FieldError
}

// Valid reports whether the form passed all blocking checks.
func (r *EntryResult) Valid() bool {
	return len(r.Errors) == 0
}

func (r *EntryResult) fail(field, code, message string) {
	r.Errors = append(r.Errors, models.FieldError{Field: field, Code: code, Message: message})
}

func (r *EntryResult) warn(field, code, message string) {
	r.Warnings = append(r.Warnings, models.FieldError{Field: field, Code: code, Message: message})
}

// ValidateEntry normalizes and validates the submitted entry fields.
// It is a pure function: the same form always yields the same result.
func ValidateEntry(form EntryForm) *EntryResult {
	res := &EntryResult{}

	res.Title = strings.TrimSpace(form.Title)
	if res.Title != "" {
		switch n := utf8.RuneCountInString(res.Title); {
		case n < minTitleLen:
			res.fail("title", CodeTitleTooShort,
				fmt.Sprintf("Title must be at least %d characters long.", minTitleLen))
		case n > maxTitleLen:
			res.fail("title", CodeTitleTooLong,
				fmt.Sprintf("Title must be %d characters or less.", maxTitleLen))
		}
	}

	res.Content = strings.TrimSpace(form.Content)
	switch n := utf8.RuneCountInString(res.Content); {
	case res.Content == "":
		res.fail("content", CodeContentRequired, "Content is required.")
	case n < minContentLen:
		res.fail("content", CodeContentTooShort,
			fmt.Sprintf("Please write at least %d characters about what you're grateful for.", minContentLen))
	case n > maxContentLen:
		res.fail("content", CodeContentTooLong,
			fmt.Sprintf("Content must be %d characters or less.", maxContentLen))
	case distinctNonSpaceChars(res.Content) < 3:
		res.fail("content", CodeContentNotMeaningful,
			"Please write meaningful content about your gratitude.")
	}

	res.Mood = models.DefaultMood
	if mood := strings.TrimSpace(form.Mood); mood != "" {
		res.Mood = models.Mood(mood)
		if !res.Mood.Valid() {
			res.fail("mood", CodeMoodInvalid, fmt.Sprintf("Unknown mood %q.", mood))
		}
	}

	res.TagList = ParseTags(form.Tags)
	for _, tag := range res.TagList {
		if utf8.RuneCountInString(tag) > maxTagLen {
			res.fail("tags", CodeTagTooLong,
				fmt.Sprintf("Tag %q is too long. Tags must be %d characters or less.", tag, maxTagLen))
		}
		if !tagCharsValid(tag) {
			res.fail("tags", CodeTagInvalidChars,
				fmt.Sprintf("Tag %q contains invalid characters. Use only letters, numbers, and spaces.", tag))
		}
	}
	if len(res.TagList) > maxTagCount {
		res.fail("tags", CodeTooManyTags,
			fmt.Sprintf("You can have a maximum of %d tags per entry.", maxTagCount))
	}
	res.Tags = CanonicalTags(res.TagList)

	res.IsPrivate = true
	if form.IsPrivate != nil {
		res.IsPrivate = *form.IsPrivate
	}

	// Advisory only: a title that echoes the opening of the content is
	// allowed, but the author gets a hint to pick a more distinct one.
	if res.Title != "" && res.Content != "" {
		head := []rune(strings.ToLower(res.Content))
		if len(head) > titleEchoWindow {
			head = head[:titleEchoWindow]
		}
		if strings.Contains(string(head), strings.ToLower(res.Title)) {
			res.warn("title", CodeTitleEchoesContent,
				"Consider making your title more unique from your content.")
		}
	}

	return res
}

// ParseTags splits a comma-separated tag string into an ordered list,
// trimming whitespace and dropping empty segments.
func ParseTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// CanonicalTags joins a tag list into the canonical stored form.
// ParseTags(CanonicalTags(tags)) round-trips, order preserved.
func CanonicalTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// distinctNonSpaceChars counts the distinct lowercased non-space runes in s.
// Degenerate repeated-character content ("aaaaaaaaaa") scores below 3.
func distinctNonSpaceChars(s string) int {
	seen := make(map[rune]struct{})
	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) {
			continue
		}
		seen[r] = struct{}{}
	}
	return len(seen)
}

func tagCharsValid(tag string) bool {
	for _, r := range tag {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != ' ' {
			return false
		}
	}
	return true
}
