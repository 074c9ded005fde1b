// Package config loads the server configuration from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"news_backend/internal/platform/cache"
	"news_backend/internal/platform/db"
	"news_backend/internal/platform/hash"
	"news_backend/internal/platform/redis"
)

const defaultPort = "3001"

// Config is the full server configuration.
type Config struct {
	Port        string
	BcryptCost  int
	HashWorkers int
	LogLevel    string
	LogFormat   string
	CacheTTL    time.Duration
	DB          db.Config
	Redis       redis.Config
}

// LoadDotEnv loads variables from the given files (".env" when none) without
// overriding variables already set. A missing file is not an error.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			slog.Warn("failed to load env file", "file", f, "error", err)
		}
	}
}

// Load reads the configuration from environment variables, applying defaults.
func Load() Config {
	return Config{
		Port:        getenv("PORT", defaultPort),
		BcryptCost:  getenvInt("BCRYPT_COST", hash.DefaultCost),
		HashWorkers: getenvInt("HASH_WORKERS", 0),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		LogFormat:   getenv("LOG_FORMAT", "json"),
		CacheTTL:    getenvDuration("CACHE_TTL", cache.DefaultTTL),
		DB:          db.LoadConfigFromEnv(),
		Redis:       redis.LoadConfig(),
	}
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}
