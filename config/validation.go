package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that every value the application cannot run without
// is present.
func ValidateConfig(cfg *Config) error {
	var errors []string

	required := map[string]string{
		"DB_HOST":    cfg.DBHost,
		"DB_USER":    cfg.DBUser,
		"DB_NAME":    cfg.DBName,
		"JWT_SECRET": cfg.JWTSecret,
	}
	for name, value := range required {
		if value == "" {
			errors = append(errors, fmt.Sprintf("required configuration %s is not set", name))
		}
	}

	if IsProduction() && cfg.DBPassword == "" {
		errors = append(errors, "db_password secret is required in production")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}

	return nil
}
