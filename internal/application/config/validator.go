package config

import (
	"errors"
	"fmt"

	"github.com/doeshing/shaid/internal/domain"
)

// Validate ensures the provider/model pair is servable and the endpoint is known.
func Validate(cfg domain.Config) error {
	if !cfg.Type.Valid() {
		return fmt.Errorf("type must be one of openai|claude|gemini|custom, got %q", cfg.Type)
	}
	return cfg.CheckCompatibility()
}

// ValidateForDispatch performs Validate plus the completeness check that an API key
// has been resolved. Failures are returned as *domain.DispatchError so they share
// exit codes with errors reported by the providers themselves.
func ValidateForDispatch(cfg domain.Config) error {
	if err := Validate(cfg); err != nil {
		return &domain.DispatchError{Kind: domain.ErrUnavailable, Provider: cfg.Type, Err: err}
	}
	if !cfg.HasAPIKey() {
		return &domain.DispatchError{
			Kind:     domain.ErrAuth,
			Provider: cfg.Type,
			Err:      missingKeyError(cfg.Type),
		}
	}
	return nil
}

func missingKeyError(kind domain.ProviderKind) error {
	if env := kind.EnvVar(); env != "" {
		return fmt.Errorf("no API key configured: set api_key in the config file, pass --api-key, or export %s", env)
	}
	return errors.New("no API key configured")
}
