package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that every setting the application cannot run without
// is present. Absence of any of these is a startup-time fatal error, never
// retried.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.DBUser == "" {
		errors = append(errors, "DB_USER is required")
	}
	if cfg.DBPassword == "" {
		errors = append(errors, "DB_PASSWORD is required")
	}
	if cfg.DBName == "" {
		errors = append(errors, "DB_NAME is required")
	}
	if cfg.SessionSecret == "" {
		errors = append(errors, "SESSION_SECRET is required")
	}

	if len(errors) > 0 {
		return fmt.Errorf("missing required settings:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
