package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that the configuration is usable in the current
// environment. Development and test may run on the built-in defaults;
// production must have explicit database credentials.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.DBHost == "" {
		errors = append(errors, "DB_HOST must not be empty")
	}
	if cfg.DBPort == "" {
		errors = append(errors, "DB_PORT must not be empty")
	}
	if cfg.DBName == "" {
		errors = append(errors, "DB_NAME must not be empty")
	}

	if IsProduction() {
		if cfg.DBUser == "postgres" && cfg.DBPassword == "postgres" {
			errors = append(errors, "default database credentials are not allowed in production")
		}
		if cfg.DBPassword == "" {
			errors = append(errors, "DB_PASSWORD is required in production")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
