package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

// Config holds the settings shared by the CLI and the stub server, loaded from
// a .env file and the environment.
type Config struct {
	BaseURL      string        // solidtime API root, including the /api prefix
	APIToken     string        // Personal access token sent as bearer
	Organization string        // Default organization id for org scoped commands
	Timeout      time.Duration // Per request timeout
	RateLimit    float64       // Requests per second, 0 disables limiting
	RateBurst    int
	Env          string // Application environment (development, production)
	LogLevel     string
	Port         string // Stub server port
	FixturesFile string // Stub server fixture file
}

// Load reads configuration from the .env file and environment variables.
// A missing .env file is not an error.
func Load() (*Config, error) {
	v, err := NewViper()
	if err != nil {
		return nil, err
	}
	return FromViper(v), nil
}

// NewViper returns a viper instance with defaults, the environment and the
// optional .env file applied. Callers may bind flags on top before calling
// FromViper.
func NewViper() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetDefault("SOLIDTIME_BASE_URL", "https://app.solidtime.io/api")
	v.SetDefault("SOLIDTIME_TIMEOUT", "30s")
	v.SetDefault("SOLIDTIME_RATE_LIMIT", 0)
	v.SetDefault("SOLIDTIME_RATE_BURST", 1)
	v.SetDefault("ENV", "production")
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("PORT", "8080")
	if err := v.ReadInConfig(); err != nil && !isMissing(err) {
		return nil, err
	}
	return v, nil
}

// FromViper builds a Config from an already populated viper instance, which
// lets commands bind flags on top of the environment.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		BaseURL:      v.GetString("SOLIDTIME_BASE_URL"),
		APIToken:     v.GetString("SOLIDTIME_API_TOKEN"),
		Organization: v.GetString("SOLIDTIME_ORGANIZATION"),
		Timeout:      v.GetDuration("SOLIDTIME_TIMEOUT"),
		RateLimit:    v.GetFloat64("SOLIDTIME_RATE_LIMIT"),
		RateBurst:    v.GetInt("SOLIDTIME_RATE_BURST"),
		Env:          v.GetString("ENV"),
		LogLevel:     v.GetString("LOG_LEVEL"),
		Port:         v.GetString("PORT"),
		FixturesFile: v.GetString("FIXTURES_FILE"),
	}
}

func isMissing(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
