package embedding

import (
	"errors"
	"os"
	"strings"
)

// ErrMissingBaseURL is returned when EMBEDDING_URL is not set.
var ErrMissingBaseURL = errors.New("missing EMBEDDING_URL environment variable")

// Config holds embedding service configuration.
type Config struct {
	BaseURL string
}

// LoadConfig reads embedding configuration from environment variables.
// Returns ErrMissingBaseURL if EMBEDDING_URL is not set.
func LoadConfig() (*Config, error) {
	baseURL := os.Getenv("EMBEDDING_URL")
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	return &Config{BaseURL: strings.TrimRight(baseURL, "/")}, nil
}
