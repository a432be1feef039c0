package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all configuration for our application
type Config struct {
	// Application
	AppMode  string
	LogLevel string

	// Storage configuration
	Storage StorageConfig

	// Reservation limits
	Limits LimitConfig

	// Admin gate
	Admin AdminConfig
}

// StorageConfig holds flat-file storage configuration
type StorageConfig struct {
	DataDir     string
	TrainsFile  string
	TicketsFile string
	WaitingFile string
	PNRFile     string
}

// LimitConfig holds the capacity ceilings for the reservation collections
type LimitConfig struct {
	MaxTrains  int
	MaxTickets int
	MaxWaiting int
	PNRFloor   int
}

// AdminConfig holds the admin gate configuration
type AdminConfig struct {
	Password string
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		AppMode:  getEnv("APP_MODE", "debug"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		Storage: StorageConfig{
			DataDir: getEnv("DATA_DIR", "./data"),
		},

		Limits: LimitConfig{
			MaxTrains:  getIntEnv("MAX_TRAINS", 20),
			MaxTickets: getIntEnv("MAX_TICKETS", 1000),
			MaxWaiting: getIntEnv("MAX_WAITING", 1000),
			PNRFloor:   getIntEnv("PNR_FLOOR", 1000),
		},

		Admin: AdminConfig{
			Password: getEnv("ADMIN_PASSWORD", "admin123"),
		},
	}

	// Build composite values
	cfg.Storage.TrainsFile = filepath.Join(cfg.Storage.DataDir, "trains.json")
	cfg.Storage.TicketsFile = filepath.Join(cfg.Storage.DataDir, "tickets.json")
	cfg.Storage.WaitingFile = filepath.Join(cfg.Storage.DataDir, "waiting.json")
	cfg.Storage.PNRFile = filepath.Join(cfg.Storage.DataDir, "pnr.json")

	return cfg
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getIntEnv gets an integer environment variable with a fallback value
func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}
