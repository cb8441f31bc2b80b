// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/oKauaDev/establo/internal/repository"
)

// Config holds all application configuration.
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion string
	Tables    repository.Tables

	// Startup behavior
	ProvisionTables bool
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":3000"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AWSRegion:     getEnv("AWS_REGION", ""),
		Tables: repository.Tables{
			User:               getEnv("USER_TABLE", "User"),
			Establishment:      getEnv("ESTABLISHMENT_TABLE", "Establishment"),
			EstablishmentRules: getEnv("ESTABLISHMENT_RULES_TABLE", "EstablishmentRules"),
			Product:            getEnv("PRODUCT_TABLE", "Product"),
		},
		ProvisionTables: getEnvBool("PROVISION_TABLES", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.AWSRegion == "" {
		return fmt.Errorf("the following environment variables are not set: AWS_REGION")
	}
	return nil
}

// IsProduction checks if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	switch value {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}
