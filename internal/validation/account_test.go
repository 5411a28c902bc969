package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Valid", "GratefulDays12!", false},
		{"Exactly Min Length", "Abcdefghij1!", false},
		{"Too Short", "Short1!", true},
		{"Too Long", "A" + strings.Repeat("b", 126) + "1!", true},
		{"No Upper", "gratefuldays12!", true},
		{"No Lower", "GRATEFULDAYS12!", true},
		{"No Digit", "GratefulDays!!", true},
		{"No Special", "GratefulDays123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"Valid", "journal_keeper7", false},
		{"Valid With Hyphen", "daily-gratitude", false},
		{"Too Short", "jo", true},
		{"Too Long", strings.Repeat("j", 31), true},
		{"Illegal Chars", "user name", true},
		{"Starts Underscore", "_user", true},
		{"Ends Hyphen", "user-", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"Valid", "keeper@example.com", false},
		{"Valid Subdomain", "keeper@mail.example.co.uk", false},
		{"Invalid Format", "not-an-email", true},
		{"Missing Domain", "keeper@", true},
		{"Space In Local Part", "kee per@example.com", true},
		{"Over Length Limit", strings.Repeat("a", 250) + "@x.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
