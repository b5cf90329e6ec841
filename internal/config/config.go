package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration loaded from the environment
type Config struct {
	Port           string
	DBPath         string
	JWTSecret      string
	AdminAccessKey string
	TokenTTL       time.Duration

	// PlannerDistancePenaltyPerKm tunes how strongly the itinerary planner
	// trades suitability against travel distance
	PlannerDistancePenaltyPerKm float64
}

// Load reads configuration from environment variables with defaults
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/tourism.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	adminKey := os.Getenv("ADMIN_ACCESS_KEY")
	if adminKey == "" {
		adminKey = "local-admin"
	}

	ttl := 12 * time.Hour
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			ttl = parsed
		}
	}

	penalty := 2.1
	if raw := os.Getenv("PLANNER_DISTANCE_PENALTY_PER_KM"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil && parsed > 0 {
			penalty = parsed
		}
	}

	return &Config{
		Port:                        port,
		DBPath:                      dbPath,
		JWTSecret:                   jwtSecret,
		AdminAccessKey:              adminKey,
		TokenTTL:                    ttl,
		PlannerDistancePenaltyPerKm: penalty,
	}
}
