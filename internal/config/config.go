package config

import (
	"os"
)

type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	RedisHost     string
	RedisPort     string
	SessionSecret string
	GinMode       string

	// Report storage. Driver is "local" or "s3".
	StorageDriver  string
	StorageDir     string
	StorageBaseURL string
	S3Bucket       string
	S3Region       string

	// Completion-email relay. RelayURL points at the deployed relay
	// function; empty disables notifications.
	RelayURL     string
	ResendAPIKey string
	EmailFrom    string
}

func Load() *Config {
	return &Config{
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "tracker"),
		DBPassword:    getEnv("DB_PASSWORD", "trackerpassword"),
		DBName:        getEnv("DB_NAME", "project_tracking"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		SessionSecret: getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		GinMode:       getEnv("GIN_MODE", "debug"),

		StorageDriver:  getEnv("STORAGE_DRIVER", "local"),
		StorageDir:     getEnv("STORAGE_DIR", "./data/reports"),
		StorageBaseURL: getEnv("STORAGE_BASE_URL", "http://localhost:8080/storage/reports"),
		S3Bucket:       getEnv("S3_BUCKET", ""),
		S3Region:       getEnv("S3_REGION", "us-east-1"),

		RelayURL:     getEnv("RELAY_URL", ""),
		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		EmailFrom:    getEnv("EMAIL_FROM", "onboarding@resend.dev"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
