package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Data source modes. Live fetches from the market-data API with synthetic
// fallback; demo serves deterministic synthetic data only.
const (
	SourceLive = "live"
	SourceDemo = "demo"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	CORS       CORSConfig
	MarketData MarketDataConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// MarketDataConfig holds market-data provider configuration
type MarketDataConfig struct {
	// Source selects the provider: "live" or "demo".
	Source string
	// APIKey is the Alpha Vantage API key (live mode).
	APIKey string
	// FernetKey is the base64 fernet key encrypting the API key at rest.
	FernetKey string
	// DailyBudget is the maximum live API calls per day.
	DailyBudget int
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	dailyBudget, err := strconv.Atoi(getEnv("API_DAILY_BUDGET", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_DAILY_BUDGET: %w", err)
	}

	source := getEnv("DATA_SOURCE", SourceLive)
	if source != SourceLive && source != SourceDemo {
		return nil, fmt.Errorf("invalid DATA_SOURCE %q: must be %q or %q", source, SourceLive, SourceDemo)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/portfolio.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		MarketData: MarketDataConfig{
			Source:      source,
			APIKey:      os.Getenv("ALPHA_VANTAGE_KEY"),
			FernetKey:   os.Getenv("FERNET_KEY"),
			DailyBudget: dailyBudget,
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
