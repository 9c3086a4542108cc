package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds everything main needs to wire the application together.
type Config struct {
	Port      string
	DBPath    string
	JWTSecret []byte
	TokenTTL  time.Duration
	SeedDemo  bool
	GinMode   string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env if present, then the environment, with fallbacks for
// local development.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using environment")
	}

	ttl := 24 * time.Hour
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			ttl = parsed
		} else {
			logrus.WithField("value", v).Warn("invalid TOKEN_TTL, using default")
		}
	}

	return Config{
		Port:      getEnv("PORT", "8080"),
		DBPath:    getEnv("DB_PATH", "food_ordering.db"),
		JWTSecret: []byte(getEnv("JWT_SECRET", "food_ordering_super_secret_2024")),
		TokenTTL:  ttl,
		SeedDemo:  getEnv("SEED_DEMO", "") == "true",
		GinMode:   getEnv("GIN_MODE", ""),
	}
}
