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

// ValidateConfig checks that the configuration is usable in the current environment
func ValidateConfig(cfg *Config) error {
	var errs []ValidationError

	if cfg.Server.Port == "" {
		errs = append(errs, ValidationError{"SERVER_PORT", "must be set"})
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		errs = append(errs, ValidationError{"CORS_ALLOWED_ORIGINS", "must be set"})
	}
	if cfg.Database.Host == "" {
		errs = append(errs, ValidationError{"DB_HOST", "must be set"})
	}
	if cfg.Database.Name == "" {
		errs = append(errs, ValidationError{"DB_NAME", "must be set"})
	}
	if cfg.Features.DetectionDelay < 0 {
		errs = append(errs, ValidationError{"DETECTION_DELAY", "must not be negative"})
	}
	if cfg.Features.RecommendationDelay < 0 {
		errs = append(errs, ValidationError{"RECOMMENDATION_DELAY", "must not be negative"})
	}
	if cfg.Features.MaxImageBytes <= 0 {
		errs = append(errs, ValidationError{"MAX_IMAGE_BYTES", "must be positive"})
	}
	if cfg.Auth.TokenTTL <= 0 {
		errs = append(errs, ValidationError{"JWT_TTL", "must be positive"})
	}

	// Sensitive values have no defaults in production or CI
	if cfg.Env == Production || cfg.Env == CI {
		if cfg.Database.Password == "" {
			errs = append(errs, ValidationError{"DB_PASSWORD", "required (env or db_password secret)"})
		}
		if cfg.Auth.JWTSecret == "" || cfg.Auth.JWTSecret == DefaultJWTSecret {
			errs = append(errs, ValidationError{"JWT_SECRET", "required (env or jwt_secret secret)"})
		}
		if cfg.Auth.SessionSecret == "" {
			errs = append(errs, ValidationError{"SESSION_SECRET", "required (env or session_secret secret)"})
		}
	}
	if cfg.Env == Production && !cfg.Auth.SecureCookies {
		errs = append(errs, ValidationError{"SESSION_SECURE_COOKIES", "must be true in production"})
	}

	if len(errs) == 0 {
		return nil
	}

	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.Error()
	}
	return fmt.Errorf("%d invalid settings:\n%s", len(errs), strings.Join(lines, "\n"))
}
