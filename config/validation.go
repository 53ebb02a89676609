package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks the configuration for the current environment.
// Development and test run with defaults; production must provide the
// database password and the upstream credential explicitly.
func ValidateConfig(cfg *Config) error {
	if !IsProduction() {
		return nil
	}

	var errors []string

	if cfg.DBPassword == "" {
		errors = append(errors, "DB_PASSWORD (or DB_PASSWORD_FILE) is required in production")
	}
	if cfg.AnthropicAPIKey == "" {
		errors = append(errors, "ANTHROPIC_API_KEY (or ANTHROPIC_API_KEY_FILE) is required in production")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}

	return nil
}
