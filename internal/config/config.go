package config

import (
	"os"
	"strconv"
)

const (
	defaultMaxUploadBytes    = 10 << 20 // 10 MiB
	defaultPageSize          = 20
	defaultPublicSearchLimit = 50
)

// Config holds the environment-driven knobs of the service. Per-installation
// behavioural settings (minimum view role, frontend upload toggle, ...) live
// in the settings table instead.
type Config struct {
	MaxUploadBytes    int64
	PageSize          int
	PublicSearchLimit int
	RedisAddr         string
	FrontendURL       string
}

func Load() Config {
	return Config{
		MaxUploadBytes:    envInt64("MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
		PageSize:          envInt("PAGE_SIZE", defaultPageSize),
		PublicSearchLimit: envInt("PUBLIC_SEARCH_LIMIT", defaultPublicSearchLimit),
		RedisAddr:         envString("REDIS_ADDR", "localhost:6379"),
		FrontendURL:       envString("FRONTEND_URL", "http://localhost:5173"),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
