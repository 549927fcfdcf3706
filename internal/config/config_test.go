package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads; viper treats empty as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "PROPERTY_KEY", "PROPERTY_HOST", "PROPERTY_BASE_URL", "PROPERTY_TIMEOUT", "PROPERTY_FIXTURE",
		"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL", "OPENAI_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROPERTY_KEY", "rapid-key")
	t.Setenv("PROPERTY_HOST", "zillow56.p.rapidapi.com")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, "rapid-key", cfg.Property.Key)
	assert.Equal(t, "zillow56.p.rapidapi.com", cfg.Property.Host)
	assert.Equal(t, 10*time.Second, cfg.Property.Timeout)
	assert.Empty(t, cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, 60*time.Second, cfg.OpenAI.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("PROPERTY_KEY", "k")
	t.Setenv("PROPERTY_HOST", "h")
	t.Setenv("PROPERTY_TIMEOUT", "3s")
	t.Setenv("OPENAI_API_KEY", "sk-abc")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("OPENAI_TIMEOUT", "90s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.Property.Timeout)
	assert.Equal(t, "sk-abc", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, 90*time.Second, cfg.OpenAI.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_MissingPropertyCredentials(t *testing.T) {
	clearEnv(t)

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "PROPERTY_KEY is required")
	assert.Contains(t, err.Error(), "PROPERTY_HOST is required")
}

func TestLoad_FixtureSkipsCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROPERTY_FIXTURE", "testdata/property.json")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "testdata/property.json", cfg.Property.Fixture)
}

func TestValidate_Port(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		c := Config{Port: port, Property: PropertyConfig{Key: "k", Host: "h"}}
		assert.Error(t, c.Validate(), "port %d", port)
	}
	assert.NoError(t, Config{Port: 1, Property: PropertyConfig{Key: "k", Host: "h"}}.Validate())
}
