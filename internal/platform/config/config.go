package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string
	JWTSecret   string
}

// Load reads a local .env file when present, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "festival"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	return Config{
		ServiceName: service,
		HTTPPort:    port,
		PostgresDSN: os.Getenv("POSTGRES_DSN"),
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET")),
	}, nil
}
