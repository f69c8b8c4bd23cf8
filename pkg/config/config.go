package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the application configuration
type Config struct {
	Server     ServerConfig
	Contentful ContentfulConfig
	Contact    ContactConfig
	Session    SessionConfig
	Log        LogConfig
	Metrics    MetricsConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string
	Env  string
}

// ContentfulConfig holds the content-source configuration.
// SpaceID and AccessToken have no fallback: when either is absent the content
// client degrades every fetch to an unavailable result instead of failing.
type ContentfulConfig struct {
	SpaceID        string
	AccessToken    string
	HomeEntryID    string
	BYOEntryID     string
	GalleryEntryID string
	GalleryQuery   string
	FetchLimit     int
	HTTPTimeout    time.Duration
}

// ContactConfig holds the outbound contact surface
type ContactConfig struct {
	WhatsAppNumber string
	InstagramURL   string
}

// SessionConfig holds guest-session configuration
type SessionConfig struct {
	SigningKey    string
	TokenTTL      time.Duration
	IdleTimeout   time.Duration
	SweepInterval time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// MetricsConfig holds metrics-related configuration
type MetricsConfig struct {
	Prefix string
}

// Load loads the application configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Contentful: ContentfulConfig{
			SpaceID:        getEnv("CONTENTFUL_SPACE_ID", ""),
			AccessToken:    getEnv("CONTENTFUL_ACCESS_TOKEN", ""),
			HomeEntryID:    getEnv("CONTENTFUL_HOME_ENTRY_ID", ""),
			BYOEntryID:     getEnv("CONTENTFUL_BYO_ENTRY_ID", "2YEekw2foFyhgBm4zEgPhj"),
			GalleryEntryID: getEnv("CONTENTFUL_GALLERY_ENTRY_ID", ""),
			GalleryQuery:   getEnv("CONTENTFUL_GALLERY_QUERY", "GalleryImage"),
			FetchLimit:     getEnvAsInt("CONTENTFUL_FETCH_LIMIT", 100),
			HTTPTimeout:    getEnvAsDuration("CONTENTFUL_HTTP_TIMEOUT", 15*time.Second),
		},
		Contact: ContactConfig{
			WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "919999999999"),
			InstagramURL:   getEnv("INSTAGRAM_URL", "https://instagram.com/"),
		},
		Session: SessionConfig{
			SigningKey:    getEnv("SESSION_SIGNING_KEY", "storefrontsessionkey"),
			TokenTTL:      getEnvAsDuration("SESSION_TOKEN_TTL", 24*time.Hour),
			IdleTimeout:   getEnvAsDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
			SweepInterval: getEnvAsDuration("SESSION_SWEEP_INTERVAL", 5*time.Minute),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", "storefront"),
		},
	}, nil
}

// Helper functions to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
