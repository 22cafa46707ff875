package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort    int
	MongoURI      string
	MongoDatabase string
	JWTSecret     string
	JWTTTL        time.Duration
	CORSOrigin    string
	Environment   string
}

// Load loads configuration from environment variables or sets defaults.
// JWT_SECRET has no default on purpose: tokens signed with a well-known
// key prove nothing, so startup fails instead.
func Load() (*Config, error) {
	// Load .env if present (local dev); deployed environments inject vars directly.
	_ = godotenv.Load()

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", "168h"))
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:    port,
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DB", "bookshelf"),
		JWTSecret:     secret,
		JWTTTL:        ttl,
		CORSOrigin:    getEnv("CORS_ORIGIN", "http://localhost:3000"),
		Environment:   getEnv("APP_ENV", "development"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
