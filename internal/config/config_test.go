package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	strongSecret := "secure-secret-at-least-32-chars-long"

	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			"development with defaults",
			Config{Env: "development", Port: "8264", JWTSecret: "your-secret-key-change-in-production", DBPassword: "password"},
			false,
		},
		{
			"missing port",
			Config{Env: "development", JWTSecret: strongSecret},
			true,
		},
		{
			"missing jwt secret",
			Config{Env: "development", Port: "8264"},
			true,
		},
		{
			"production with default jwt secret",
			Config{Env: "production", Port: "8264", JWTSecret: "your-secret-key-change-in-production", DBPassword: "strongpw"},
			true,
		},
		{
			"production with short jwt secret",
			Config{Env: "production", Port: "8264", JWTSecret: "short", DBPassword: "strongpw"},
			true,
		},
		{
			"production with default db password",
			Config{Env: "production", Port: "8264", JWTSecret: strongSecret, DBPassword: "password"},
			true,
		},
		{
			"production hardened",
			Config{Env: "production", Port: "8264", JWTSecret: strongSecret, DBPassword: "strongpw", DBSSLMode: "require"},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer viper.Reset()

	os.Setenv("APP_ENV", "test")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8264", c.Port)
	assert.Equal(t, "gratitude", c.DBName)
	assert.Equal(t, "test", c.Env)
	assert.NotEmpty(t, c.JWTSecret)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer os.Unsetenv("PORT")
	defer viper.Reset()

	os.Setenv("APP_ENV", "test")
	os.Setenv("PORT", "9100")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9100", c.Port)
}
