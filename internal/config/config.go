package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	Engine   EngineConfig
	LogLevel string
}

// ServerConfig holds the HTTP server configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// EngineConfig holds the narration engine configuration
type EngineConfig struct {
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	MaxRetries int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvOrDefault("PORT", "8080"),
			AllowedOrigins: splitAndTrim(os.Getenv("ALLOWED_ORIGINS")),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Engine: EngineConfig{
			APIKey:     os.Getenv("OPENAI_API_KEY"),
			BaseURL:    os.Getenv("OPENAI_BASE_URL"),
			Model:      os.Getenv("OPENAI_MODEL"),
			Timeout:    time.Duration(getEnvAsIntOrDefault("ENGINE_TIMEOUT_SECONDS", 120)) * time.Second,
			MaxRetries: getEnvAsIntOrDefault("ENGINE_MAX_RETRIES", 3),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.Engine.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
