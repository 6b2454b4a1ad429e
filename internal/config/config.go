package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Assets AssetsConfig
	IPFS   IPFSConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port           string        `env:"SERVER_PORT" envDefault:"8080"`
	Env            string        `env:"SERVER_ENV" envDefault:"development"`
	ReadTimeout    time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout   time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	AllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

// AssetsConfig holds the location of the seed data files
type AssetsConfig struct {
	Dir         string `env:"ASSETS_DIR" envDefault:"./attached_assets"`
	DomainsFile string `env:"ASSETS_DOMAINS_FILE" envDefault:"overscale_matrix_full.csv"`
	SocietyFile string `env:"ASSETS_SOCIETIES_FILE" envDefault:"hidden_societies_chart.csv"`
}

// IPFSConfig holds NFT.Storage upload settings
type IPFSConfig struct {
	APIKey   string        `env:"NFT_STORAGE_API_KEY"`
	Endpoint string        `env:"NFT_STORAGE_ENDPOINT" envDefault:"https://api.nft.storage"`
	Timeout  time.Duration `env:"NFT_STORAGE_TIMEOUT" envDefault:"30s"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	// Server validation
	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}
	if c.Server.Env != "development" && c.Server.Env != "production" && c.Server.Env != "test" {
		errs = append(errs, fmt.Errorf("SERVER_ENV must be 'development', 'production', or 'test', got '%s'", c.Server.Env))
	}
	if len(c.Server.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must have at least one origin"))
	}

	// Assets validation
	if c.Assets.Dir == "" {
		errs = append(errs, errors.New("ASSETS_DIR is required"))
	}
	if c.Assets.DomainsFile == "" {
		errs = append(errs, errors.New("ASSETS_DOMAINS_FILE is required"))
	}
	if c.Assets.SocietyFile == "" {
		errs = append(errs, errors.New("ASSETS_SOCIETIES_FILE is required"))
	}

	// IPFS validation - the key is optional, but uploads need an endpoint
	if c.IPFS.Endpoint == "" {
		errs = append(errs, errors.New("NFT_STORAGE_ENDPOINT is required"))
	}
	if c.IPFS.Timeout <= 0 {
		errs = append(errs, errors.New("NFT_STORAGE_TIMEOUT must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
