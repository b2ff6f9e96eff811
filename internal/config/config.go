package config

import (
	"errors"
	"os"
)

// Config holds the settings shared by every binary. The token is optional:
// anonymous calls work against public repositories, just with a lower rate
// limit.
type Config struct {
	Token      string
	APIBaseURL string
}

// CollectorConfig adds the settings the snapshot collector needs.
type CollectorConfig struct {
	Config
	DatabaseURL string
}

func Load() *Config {
	return &Config{
		Token:      os.Getenv("GITHUB_TOKEN"),
		APIBaseURL: os.Getenv("GITHUB_API_URL"),
	}
}

func LoadCollector() (*CollectorConfig, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	return &CollectorConfig{
		Config:      *Load(),
		DatabaseURL: databaseURL,
	}, nil
}
