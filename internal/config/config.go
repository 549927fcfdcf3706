package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is read once at startup and passed by value afterwards.
type Config struct {
	Port     int
	Property PropertyConfig
	OpenAI   OpenAIConfig
	Logging  LoggingConfig
}

type PropertyConfig struct {
	Key     string
	Host    string
	BaseURL string
	Timeout time.Duration
	Fixture string // path to a recorded lookup body; skips the upstream when set
}

type OpenAIConfig struct {
	APIKey  string // optional; summaries degrade to a fixed message without it
	Model   string
	BaseURL string
	Timeout time.Duration
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads .env (if present) and the process environment.
func Load() (Config, error) {
	// .env is optional; real environment variables win over it
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	applyDefaults(v)

	cfg := Config{
		Port: v.GetInt("PORT"),
		Property: PropertyConfig{
			Key:     v.GetString("PROPERTY_KEY"),
			Host:    v.GetString("PROPERTY_HOST"),
			BaseURL: v.GetString("PROPERTY_BASE_URL"),
			Timeout: v.GetDuration("PROPERTY_TIMEOUT"),
			Fixture: v.GetString("PROPERTY_FIXTURE"),
		},
		OpenAI: OpenAIConfig{
			APIKey:  v.GetString("OPENAI_API_KEY"),
			Model:   v.GetString("OPENAI_MODEL"),
			BaseURL: v.GetString("OPENAI_BASE_URL"),
			Timeout: v.GetDuration("OPENAI_TIMEOUT"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 5000)
	v.SetDefault("PROPERTY_TIMEOUT", "10s")
	v.SetDefault("OPENAI_MODEL", "gpt-4o")
	v.SetDefault("OPENAI_TIMEOUT", "60s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

// Validate checks the settings the service cannot start without.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.Property.Fixture != "" {
		return nil
	}
	var errs []error
	if c.Property.Key == "" {
		errs = append(errs, errors.New("PROPERTY_KEY is required"))
	}
	if c.Property.Host == "" {
		errs = append(errs, errors.New("PROPERTY_HOST is required"))
	}
	return errors.Join(errs...)
}

func (c Config) Addr() string { return fmt.Sprintf(":%d", c.Port) }
