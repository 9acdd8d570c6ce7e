// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Database   DatabaseConfig
	Redis      RedisConfig
	Server     ServerConfig
	Logging    LoggingConfig
	CORS       CORSConfig
	OpenRouter OpenRouterConfig
	Jobs       JobsConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// RedisConfig holds Redis connection settings
//
// An empty Host disables the Redis-backed job queue.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port               int
	RateLimitPerMinute int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// OpenRouterConfig holds settings of the chat-completions provider
type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Referer string
	Title   string
}

// JobsConfig holds settings of the in-process background worker pool
type JobsConfig struct {
	Workers   int
	QueueSize int
}

var defaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:3001",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:3001",
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	godotenv.Load()

	cfg := &Config{}

	// Database configuration
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		return nil, fmt.Errorf("DB_HOST is required")
	}
	cfg.Database.Host = dbHost

	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		return nil, fmt.Errorf("DB_PORT is required")
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	cfg.Database.Port = dbPort

	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		return nil, fmt.Errorf("DB_USER is required")
	}
	cfg.Database.User = dbUser

	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	cfg.Database.Password = dbPassword

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}
	cfg.Database.DBName = dbName

	// Server configuration
	cfg.Server.Port, err = intFromEnv("SERVER_PORT", 8000)
	if err != nil {
		return nil, err
	}

	cfg.Server.RateLimitPerMinute, err = intFromEnv("RATE_LIMIT_PER_MINUTE", 100)
	if err != nil {
		return nil, err
	}

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // default level
	}
	cfg.Logging.Level = logLevel

	// CORS configuration
	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// OpenRouter configuration
	apiKey := os.Getenv("OPENROUTER_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY is required")
	}
	cfg.OpenRouter.APIKey = apiKey
	cfg.OpenRouter.Model = stringFromEnv("OPENROUTER_MODEL", "qwen/qwen3-coder:free")
	cfg.OpenRouter.BaseURL = stringFromEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1/chat/completions")
	cfg.OpenRouter.Referer = stringFromEnv("OPENROUTER_REFERER", "http://localhost:3000")
	cfg.OpenRouter.Title = stringFromEnv("OPENROUTER_TITLE", "LearnAnySkills Platform")

	// Redis configuration (optional, enables the asynq job queue)
	cfg.Redis.Host = os.Getenv("REDIS_HOST")
	cfg.Redis.Port, err = intFromEnv("REDIS_PORT", 6379)
	if err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD") // optional
	cfg.Redis.DB, err = intFromEnv("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	// Background jobs configuration
	cfg.Jobs.Workers, err = intFromEnv("JOB_WORKERS", 4)
	if err != nil {
		return nil, err
	}
	if cfg.Jobs.Workers < 1 {
		return nil, fmt.Errorf("JOB_WORKERS must be positive")
	}

	cfg.Jobs.QueueSize, err = intFromEnv("JOB_QUEUE_SIZE", 100)
	if err != nil {
		return nil, err
	}
	if cfg.Jobs.QueueSize < 1 {
		return nil, fmt.Errorf("JOB_QUEUE_SIZE must be positive")
	}

	return cfg, nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&multiStatements=true",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}

// RedisEnabled reports whether a Redis host is configured
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

// RedisAddr returns the host:port address of Redis
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

func stringFromEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func intFromEnv(key string, fallback int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}

// parseOrigins splits a comma-separated origin list, falling back to the local frontend origins
func parseOrigins(raw string) []string {
	if raw == "" {
		return append([]string(nil), defaultAllowedOrigins...)
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, origin := range parts {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	// If no valid origins found, keep the local defaults
	if len(origins) == 0 {
		return append([]string(nil), defaultAllowedOrigins...)
	}
	return origins
}
