package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server Server
	State  State
	CORS   CORS
	Quote  Quote
}

// Server holds server-specific configuration
type Server struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// State holds state-store configuration
type State struct {
	Path string
}

// CORS holds CORS-specific configuration
type CORS struct {
	AllowedOrigins []string
}

// Quote holds quote-provider configuration. APIKey empty means the
// provider is disabled and EOD refreshes report failure without
// touching prices. Schedule is an optional cron expression for automatic
// end-of-day refreshes; empty disables the scheduler.
type Quote struct {
	APIKey   string
	Model    string
	Timeout  time.Duration
	Schedule string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	timeoutSec, err := strconv.Atoi(getEnv("QUOTE_TIMEOUT_SECONDS", "30"))
	if err != nil || timeoutSec <= 0 {
		return nil, fmt.Errorf("invalid QUOTE_TIMEOUT_SECONDS: %q", getEnv("QUOTE_TIMEOUT_SECONDS", "30"))
	}

	config := &Config{
		Server: Server{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		State: State{
			Path: getEnv("DB_PATH", "./data/zen_trader.db"),
		},
		CORS: CORS{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Quote: Quote{
			APIKey:   getEnv("GEMINI_API_KEY", ""),
			Model:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Timeout:  time.Duration(timeoutSec) * time.Second,
			Schedule: getEnv("EOD_REFRESH_SCHEDULE", ""),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
