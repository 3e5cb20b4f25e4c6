package api

import (
	"os"
	"strings"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port         string
	PostgresDSN  string
	RedisAddr    string
	SnapshotFile string
	GeoProvider  string
	GinMode      string
}

// LoadConfig reads environment variables and applies defaults.
func LoadConfig() Config {
	return Config{
		Port:         envDefault("PORT", "8080"),
		PostgresDSN:  strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		RedisAddr:    strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		SnapshotFile: envDefault("SNAPSHOT_FILE", "labstock-snapshot.json"),
		GeoProvider:  strings.TrimSpace(os.Getenv("GEO_PROVIDER_URL")),
		GinMode:      strings.TrimSpace(os.Getenv("GIN_MODE")),
	}
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
