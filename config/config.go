package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Database configuration
	DatabasePath string

	// Game configuration
	StartingBalance float64

	// Environment
	Environment string // "development" or "production"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables.
// A .env file in the working directory is honored when present; every key
// has a default, so running with no environment at all is fine.
func load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		DatabasePath:    os.Getenv("DATABASE_PATH"),
		StartingBalance: 100.0,
		Environment:     os.Getenv("ENVIRONMENT"),
	}

	if config.DatabasePath == "" {
		config.DatabasePath = "slot_machine.db"
	}

	// Override defaults if environment variables are set
	if balance := os.Getenv("STARTING_BALANCE"); balance != "" {
		parsed, err := strconv.ParseFloat(balance, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid STARTING_BALANCE %q: %w", balance, err)
		}
		config.StartingBalance = parsed
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	return config, nil
}
