package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	GinMode        string
	JWTSecret      string
	SessionTTL     time.Duration
	AllowedOrigins []string
	DemoPassword   string
	DigestSchedule string
	LogLevel       string
	RateLimitRPS   int
}

// Load reads .env (when present) and then the process environment.
// When ALLOWED_ORIGINS is unset, AllowedOrigins stays empty and the HTTP layer
// falls back to its own default origin.
func Load(files ...string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load(files...)

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		JWTSecret:      getEnv("JWT_SECRET", "KelofaDemoSecret"),
		DemoPassword:   os.Getenv("DEMO_PASSWORD"),
		DigestSchedule: getEnv("DIGEST_SCHEDULE", "@every 1h"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	cfg.SessionTTL = ttl

	rps, err := strconv.Atoi(getEnv("RATE_LIMIT_RPS", "50"))
	if err != nil || rps <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS %q", os.Getenv("RATE_LIMIT_RPS"))
	}
	cfg.RateLimitRPS = rps

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
