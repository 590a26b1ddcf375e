package main

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

const devFallbackSecret = "dev-insecure-secret-change"

// Config carries all runtime settings. It is loaded once at startup and
// injected explicitly; nothing reads the environment after LoadConfig returns.
type Config struct {
	Port        string
	DatabaseDSN string
	JWTSecret   []byte
	TokenTTL    time.Duration
	AutoMigrate bool
}

// LoadConfig reads configuration from the environment. Call godotenv.Load
// first if a .env file should be honored.
func LoadConfig() Config {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = devFallbackSecret
		slog.Warn("JWT_SECRET not set, using insecure development fallback")
	}
	return Config{
		Port:        getEnv("PORT", "3000"),
		DatabaseDSN: os.Getenv("DB_DSN"),
		JWTSecret:   []byte(secret),
		TokenTTL:    getEnvDuration("TOKEN_TTL", 30*24*time.Hour),
		AutoMigrate: getEnvBool("DB_AUTO_MIGRATE", true),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		slog.Warn("invalid duration in env, using fallback", "key", key, "value", v)
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(v) {
		case "false", "0", "no":
			return false
		default:
			return true
		}
	}
	return fallback
}
