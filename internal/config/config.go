package config

import (
	"os" // For environment variables

	"github.com/joho/godotenv" // For loading .env files
	"github.com/sirupsen/logrus"
)

// Config holds the application configuration
type Config struct {
	AppPort   string // Application port
	JWTSecret string // JWT signing secret (required)
	IsProd    bool   // Is production environment
	SeedData  bool   // Seed demo users/products at startup
}

// getenv returns the environment variable k, or def when unset
func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// LoadConfig loads configuration from environment variables.
// The process exits if JWT_SECRET is not set: tokens signed with an
// accidental empty secret would be trivially forgeable.
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logrus.Fatal("JWT_SECRET is required")
	}
	return &Config{
		AppPort:   getenv("APP_PORT", "5000"),        // Application port
		JWTSecret: secret,                            // JWT signing secret
		IsProd:    os.Getenv("IS_PROD") == "true",    // Is production environment
		SeedData:  os.Getenv("SEED_DATA") != "false", // Seed demo data unless disabled
	}
}
