package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration (rendered-page cache)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Session configuration
	SessionSecret string

	// Object storage configuration
	S3Bucket        string
	S3Region        string
	S3PublicBaseURL string
}

// Load creates a new Config instance from environment variables. A .env file
// is honored when present so local runs do not need an exported environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getenv("SERVER_PORT", "8080"),
		ServerHost: getenv("SERVER_HOST", "0.0.0.0"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "atelier"),
		DBSSLMode:  getenv("DB_SSL_MODE", "disable"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       0,
		RedisURL:      os.Getenv("REDIS_URL"),

		SessionSecret: os.Getenv("SESSION_SECRET"),

		S3Bucket:        getenv("S3_BUCKET_NAME", "recipes"),
		S3Region:        os.Getenv("AWS_REGION"),
		S3PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
