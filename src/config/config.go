package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                  string
	MoniteAPIURL          string
	MoniteClientID        string
	MoniteClientSecret    string
	MoniteEntityID        string
	MoniteAPIVersion      string
	JWTSecret             string
	DashboardEmail        string
	DashboardPasswordHash string
	NotificationTTL       time.Duration
	DemoMode              bool
}

func Load() Config {
	// Load .env file if present
	_ = godotenv.Load()

	cfg := Config{
		Port:                  getEnv("PORT", "8080"),
		MoniteAPIURL:          getEnv("MONITE_API_URL", "https://api.sandbox.monite.com/v1"),
		MoniteClientID:        getEnv("MONITE_CLIENT_ID", ""),
		MoniteClientSecret:    getEnv("MONITE_CLIENT_SECRET", ""),
		MoniteEntityID:        getEnv("MONITE_ENTITY_ID", ""),
		MoniteAPIVersion:      getEnv("MONITE_API_VERSION", "2024-01-31"),
		JWTSecret:             getEnv("JWT_SECRET", ""),
		DashboardEmail:        getEnv("DASHBOARD_EMAIL", ""),
		DashboardPasswordHash: getEnv("DASHBOARD_PASSWORD_HASH", ""),
		NotificationTTL:       getDuration("NOTIFICATION_TTL", time.Minute),
		DemoMode:              getEnv("DEMO_MODE", "") == "true",
	}

	if cfg.MoniteClientID == "" {
		log.Fatal("MONITE_CLIENT_ID is required")
	}
	if cfg.MoniteClientSecret == "" {
		log.Fatal("MONITE_CLIENT_SECRET is required")
	}
	if cfg.MoniteEntityID == "" {
		log.Fatal("MONITE_ENTITY_ID is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	if cfg.DashboardEmail == "" || cfg.DashboardPasswordHash == "" {
		log.Fatal("DASHBOARD_EMAIL and DASHBOARD_PASSWORD_HASH are required")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return d
}
