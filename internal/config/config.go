package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"aqarsearch/internal/model"
)

// Config holds all configuration for the application
type Config struct {
	PostgreSQL PostgreSQLConfig
	Server     ServerConfig
	Search     SearchConfig
	Geo        GeoConfig
	Assistant  AssistantConfig
	Logging    LoggingConfig
}

// PostgreSQLConfig holds PostgreSQL database configuration
type PostgreSQLConfig struct {
	DSN                string // full connection string, preferred when set
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
}

// SearchConfig holds search-related configuration
type SearchConfig struct {
	DefaultLimit        int
	MaxLimit            int
	EmbeddingDimensions int
}

// GeoConfig holds the geographic defaults: the fallback reference point used
// when no search results carry valid coordinates, and the default proximity
// thresholds in minutes.
type GeoConfig struct {
	DefaultLat           float64
	DefaultLon           float64
	SchoolMaxMinutes     int
	UniversityMaxMinutes int
	MosqueMaxMinutes     int
	MetroMaxMinutes      int
}

// AssistantConfig holds the conversational backend configuration
type AssistantConfig struct {
	BaseURL string
	APIKey  string
	Timeout int
	Enabled bool
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		PostgreSQL: PostgreSQLConfig{
			DSN:                getEnv("DATABASE_URL", getEnv("POSTGRESQL_URI", getEnv("PG_DSN", ""))),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "aqar_search"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 25),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 5),
		},
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Search: SearchConfig{
			DefaultLimit:        getEnvAsInt("SEARCH_DEFAULT_LIMIT", 50),
			MaxLimit:            getEnvAsInt("SEARCH_MAX_LIMIT", 200),
			EmbeddingDimensions: getEnvAsInt("EMBEDDING_DIMENSIONS", 1024),
		},
		Geo: GeoConfig{
			// Central Riyadh
			DefaultLat:           getEnvAsFloat("GEO_DEFAULT_LAT", 24.7136),
			DefaultLon:           getEnvAsFloat("GEO_DEFAULT_LON", 46.6753),
			SchoolMaxMinutes:     getEnvAsInt("GEO_SCHOOL_MAX_MINUTES", 15),
			UniversityMaxMinutes: getEnvAsInt("GEO_UNIVERSITY_MAX_MINUTES", 15),
			MosqueMaxMinutes:     getEnvAsInt("GEO_MOSQUE_MAX_MINUTES", 10),
			MetroMaxMinutes:      getEnvAsInt("GEO_METRO_MAX_MINUTES", 15),
		},
		Assistant: AssistantConfig{
			BaseURL: getEnv("ASSISTANT_BASE_URL", ""),
			APIKey:  getEnv("ASSISTANT_API_KEY", ""),
			Timeout: getEnvAsInt("ASSISTANT_TIMEOUT", 30),
			Enabled: getEnv("ASSISTANT_BASE_URL", "") != "",
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

// GetPostgreSQLDSN returns PostgreSQL connection string
func (c *Config) GetPostgreSQLDSN() string {
	if c.PostgreSQL.DSN != "" {
		return c.PostgreSQL.DSN
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgreSQL.Host,
		c.PostgreSQL.Port,
		c.PostgreSQL.User,
		c.PostgreSQL.Password,
		c.PostgreSQL.Database,
		c.PostgreSQL.SSLMode,
	)
}

// DefaultReference returns the fallback reference point.
func (c *Config) DefaultReference() model.GeoPoint {
	return model.GeoPoint{Lat: c.Geo.DefaultLat, Lon: c.Geo.DefaultLon}
}

// DefaultFilterCriteria returns the criteria a fresh search session starts
// with: every dimension unrestricted, thresholds at their configured values.
func (c *Config) DefaultFilterCriteria() model.FilterCriteria {
	return model.FilterCriteria{
		SchoolMaxMinutes:     c.Geo.SchoolMaxMinutes,
		UniversityMaxMinutes: c.Geo.UniversityMaxMinutes,
		MosqueMaxMinutes:     c.Geo.MosqueMaxMinutes,
		MetroMaxMinutes:      c.Geo.MetroMaxMinutes,
	}
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}
