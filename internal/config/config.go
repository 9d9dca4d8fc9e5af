package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is read once at startup from the environment.
type Config struct {
	DatabaseURL     string
	Port            string
	Env             string
	LogLevel        string
	CORSOrigin      string
	SessionSecret   string
	RedisAddr       string
	RateLimitMax    int
	RateLimitWindow time.Duration
	ShutdownTimeout time.Duration
	MigrationsPath  string
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Load reads the environment. Only DATABASE_URL is mandatory; malformed
// numbers fall back to their defaults.
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		Port:            env("PORT", "8080"),
		Env:             strings.ToLower(env("ENV", "development")),
		LogLevel:        env("LOG_LEVEL", "info"),
		CORSOrigin:      env("CORS_ORIGIN", "*"),
		SessionSecret:   strings.TrimSpace(os.Getenv("SESSION_SECRET")),
		RedisAddr:       strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RateLimitMax:    positiveInt("RATE_LIMIT_TX_MAX", 60),
		RateLimitWindow: time.Duration(positiveInt("RATE_LIMIT_TX_WINDOW_SECONDS", 60)) * time.Second,
		ShutdownTimeout: time.Duration(positiveInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		MigrationsPath:  env("MIGRATIONS_PATH", "migrations"),
	}

	if cfg.DatabaseURL == "" {
		return cfg, errors.New("DATABASE_URL is not set")
	}
	return cfg, nil
}

func env(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func positiveInt(k string, def int) int {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}
