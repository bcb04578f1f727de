package config

import "fmt"

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks that every field without a usable default is set.
func Validate(cfg *Config) error {
	required := map[string]string{
		"db.host":    cfg.DBHost,
		"db.user":    cfg.DBUser,
		"db.name":    cfg.DBName,
		"jwt.secret": cfg.JWTSecret,
	}
	for field, value := range required {
		if value == "" {
			return ValidationError{Field: field, Message: "is required"}
		}
	}
	if cfg.RateLimitPerMinute <= 0 {
		return ValidationError{Field: "rate_limit.per_minute", Message: "must be positive"}
	}
	return nil
}
