package catalog

import (
	"errors"
	"os"
)

// DefaultMarket is the catalog market used when MARKET is not set.
const DefaultMarket = "US"

// ErrMissingCredentials is returned when SPOTIFY_ID or SPOTIFY_SECRET is not set.
var ErrMissingCredentials = errors.New("missing SPOTIFY_ID or SPOTIFY_SECRET environment variable")

// Config holds Spotify catalog configuration.
type Config struct {
	ClientID     string
	ClientSecret string
	Market       string
}

// LoadConfig reads catalog configuration from environment variables.
// Returns ErrMissingCredentials if either credential is not set.
func LoadConfig() (*Config, error) {
	clientID := os.Getenv("SPOTIFY_ID")
	clientSecret := os.Getenv("SPOTIFY_SECRET")

	if clientID == "" || clientSecret == "" {
		return nil, ErrMissingCredentials
	}

	market := os.Getenv("MARKET")
	if market == "" {
		market = DefaultMarket
	}

	return &Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Market:       market,
	}, nil
}
