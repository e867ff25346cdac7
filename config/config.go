package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/planvault/logutils"
)

// LoadEnv loads environment variables from .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		logutils.Log.Warn("no .env file found, using system environment variables")
	}
}

// GetEnv gets an environment variable or returns a default value if not present
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// GetEnvInt gets an integer environment variable or returns a default value
func GetEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		logutils.Log.WithField("key", key).Warnf("invalid integer %q, using default %d", value, fallback)
		return fallback
	}
	return parsed
}

// CacheTTL returns the row-cache time-to-live. Defaults to 600 seconds.
func CacheTTL() time.Duration {
	return time.Duration(GetEnvInt("CACHE_TTL_SECONDS", 600)) * time.Second
}

// CacheSize returns the maximum number of entries the in-memory row cache holds.
func CacheSize() int {
	return GetEnvInt("CACHE_MAX_ENTRIES", 4096)
}

// RedisAddr returns the Redis address for the row cache, or "" when the
// in-memory cache should be used instead.
func RedisAddr() string {
	return GetEnv("CACHE_REDIS_ADDR", "")
}
