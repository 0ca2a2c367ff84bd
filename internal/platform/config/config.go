// Package config loads the service configuration from the environment.
package config

import (
	"os"
	"strings"
)

const (
	// defaultPort is used when PORT is not set.
	defaultPort = "3000"
)

// defaultAllowedOrigins is the local-development allow-list used when
// ALLOWED_ORIGINS is not set.
var defaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
}

// Config holds the service configuration.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string

	// DatabaseURL is the postgres connection string.
	DatabaseURL string

	// AllowedOrigins is the browser origin allow-list for CORS.
	// It is the single source for the allow-list; handlers never carry their own copy.
	AllowedOrigins []string
}

// Load reads the configuration from environment variables.
// PORT falls back to 3000 and ALLOWED_ORIGINS to the local-development
// origins; DATABASE_URL has no default.
func Load() Config {
	cfg := Config{
		Port:           os.Getenv("PORT"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		AllowedOrigins: parseOrigins(os.Getenv("ALLOWED_ORIGINS")),
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	return cfg
}

// parseOrigins splits a comma-separated origin list, trimming whitespace and
// dropping empty entries.
func parseOrigins(raw string) []string {
	if raw == "" {
		return defaultAllowedOrigins
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return defaultAllowedOrigins
	}
	return origins
}
