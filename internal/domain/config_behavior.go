package domain

import (
	"fmt"
	"strings"
)

// HasAPIKey reports whether an API key has been resolved.
func (c Config) HasAPIKey() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// ModelOrDefault returns the configured model, or the kind's default when unset.
func (c Config) ModelOrDefault() string {
	if strings.TrimSpace(c.Model) == "" {
		return c.Type.DefaultModel()
	}
	return c.Model
}

// IsCompatible checks the provider/model pair against the compatibility table.
func (c Config) IsCompatible() bool {
	return c.Type.Supports(c.Model)
}

// CheckCompatibility returns a descriptive error when the pair is not servable.
func (c Config) CheckCompatibility() error {
	if !c.Type.Valid() {
		return fmt.Errorf("unknown provider type %q", c.Type)
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("model name cannot be empty")
	}
	if !c.IsCompatible() {
		return fmt.Errorf("model %q is not served by provider %s", c.Model, c.Type.DisplayName())
	}
	if c.Type.RequiresBaseURL() && strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("provider %s requires base_url", c.Type.DisplayName())
	}
	return nil
}

// Redacted returns a copy that is safe to print.
func (c Config) Redacted() Config {
	c.APIKey = MaskSecret(c.APIKey)
	return c
}

// MaskSecret keeps only a short prefix and suffix of a secret.
func MaskSecret(secret string) string {
	secret = strings.TrimSpace(secret)
	switch {
	case secret == "":
		return ""
	case len(secret) <= 8:
		return strings.Repeat("*", len(secret))
	default:
		return secret[:3] + strings.Repeat("*", len(secret)-7) + secret[len(secret)-4:]
	}
}
