package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config represents the application configuration structure
type Config struct {
	Environment            string `default:"dev" split_words:"true"`
	PortalAPIListenAddress string `default:":8080" envconfig:"portal_api_listen_address"`
	PortalAPIBaseAddress   string `default:"http://localhost:8080" envconfig:"portal_api_base_address"`
	PortalAPIAllowedOrigin string `default:"*" envconfig:"portal_api_allowed_origin"`
	StorageDriver          string `default:"postgres" split_words:"true"`
	PostgresDSN            string `envconfig:"postgres_dsn"`
	SessionSigningSecret   string `split_words:"true"`
}

// LoadFromEnv loads a new configuration structure using environment variables and an optional .env file
func LoadFromEnv() (*Config, error) {
	// Load a .env file if it exists
	_ = godotenv.Overload()

	// Load a new configuration structure using environment variables
	config := new(Config)
	if err := envconfig.Process("ap", config); err != nil {
		return nil, err
	}
	return config, nil
}

// IsEnvProduction returns whether the application runs in production mode
func (config *Config) IsEnvProduction() bool {
	return strings.EqualFold(config.Environment, "prod") || strings.EqualFold(config.Environment, "production")
}

// IsPortalAPISecure returns whether the portal API is reachable via HTTPS
func (config *Config) IsPortalAPISecure() bool {
	return strings.HasPrefix(strings.ToLower(config.PortalAPIBaseAddress), "https://")
}
