package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Upstream model API. The key never leaves the server; the URL override
	// exists so tests can point the proxy at a local mock.
	AnthropicAPIKey string
	AnthropicAPIURL string

	// Optional S3 export of rendered grocery documents. Disabled when the
	// bucket is empty.
	S3Bucket  string
	AWSRegion string
}

// LoadConfig creates a Config from environment variables. Secrets may be
// provided directly or through *_FILE variables pointing at mounted secret
// files.
func LoadConfig() (*Config, error) {
	apiKey, err := loadSecret("ANTHROPIC_API_KEY")
	if err != nil {
		return nil, err
	}

	dbPassword, err := loadSecret("DB_PASSWORD")
	if err != nil {
		return nil, err
	}

	redisDB := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			redisDB = db
		}
	}

	cfg := &Config{
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: dbPassword,
		DBName:     getEnv("DB_NAME", "recipeai"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		RedisURL:      os.Getenv("REDIS_URL"),

		AnthropicAPIKey: apiKey,
		AnthropicAPIURL: getEnv("ANTHROPIC_API_URL", "https://api.anthropic.com/v1/messages"),

		S3Bucket:  os.Getenv("S3_BUCKET_NAME"),
		AWSRegion: os.Getenv("AWS_REGION"),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadSecret reads NAME, falling back to the file named by NAME_FILE. An
// unset secret is not an error here; callers that require it decide when.
func loadSecret(name string) (string, error) {
	if value := os.Getenv(name); value != "" {
		return value, nil
	}

	file := os.Getenv(name + "_FILE")
	if file == "" {
		return "", nil
	}

	content, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read secret file for %s: %w", name, err)
	}
	return strings.TrimSpace(string(content)), nil
}

// getEnv returns the environment value or a default when unset.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
