package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadTestConfig loads the configuration for integration tests from TEST_DB_* variables.
// Missing variables leave the Database section empty so tests can skip.
func LoadTestConfig() (*Config, error) {
	_ = godotenv.Load("./../../.env")
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Database.Host = os.Getenv("TEST_DB_HOST")
	cfg.Database.User = os.Getenv("TEST_DB_USER")
	cfg.Database.Password = os.Getenv("TEST_DB_PASSWORD")
	cfg.Database.DBName = os.Getenv("TEST_DB_NAME")

	dbPortStr := os.Getenv("TEST_DB_PORT")
	if dbPortStr != "" {
		dbPort, err := strconv.Atoi(dbPortStr)
		if err != nil {
			return nil, fmt.Errorf("invalid TEST_DB_PORT: %w", err)
		}
		cfg.Database.Port = dbPort
	}

	return cfg, nil
}

// HasDatabase reports whether every database setting is present
func (c *Config) HasDatabase() bool {
	return c.Database.Host != "" && c.Database.Port != 0 && c.Database.User != "" && c.Database.DBName != ""
}
