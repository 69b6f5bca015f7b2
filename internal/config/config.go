package config

import (
	"os"
	"time"
)

// EimzoConfig holds connection settings for the external e-imzo server.
type EimzoConfig struct {
	// BaseURL is the root of the e-imzo server, fixed per deployment.
	BaseURL string
	// Timeout bounds every outbound call. Zero disables the bound entirely,
	// restoring the historical unbounded behaviour of the gateway.
	Timeout time.Duration
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables.
type AppConfig struct {
	Port  string
	Eimzo EimzoConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port: getEnv("PORT", "8080"),
		Eimzo: EimzoConfig{
			BaseURL: getEnv("EIMZO_BASE_URL", "http://e-imzo-server:8080"),
			Timeout: getEnvDuration("EIMZO_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil && d >= 0 {
			return d
		}
	}
	return def
}
