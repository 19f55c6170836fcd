package doctor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	appconfig "github.com/doeshing/shaid/internal/application/config"
	"github.com/doeshing/shaid/internal/domain"
	"github.com/doeshing/shaid/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider   ports.ConfigProvider
	SecurityService  ports.SecurityService
	ContextCollector ports.ContextCollector
}

// Run executes checks and returns a report. The error is non-nil only when the
// configuration cannot be resolved at all; every other problem is a check result.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	path, pathErr := s.ConfigProvider.Path()
	cfg, err := s.ConfigProvider.Resolve(ctx, domain.Overrides{})
	switch {
	case err == nil:
		checks = append(checks, ok("Config file", fmt.Sprintf("loaded %s", path)))
	case errors.Is(err, domain.ErrConfigUnwritable):
		checks = append(checks, warn("Config file", fmt.Sprintf("using in-memory defaults: %v", err)))
	default:
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	if pathErr != nil {
		checks = append(checks, warn("Config path", pathErr.Error()))
	}

	checks = append(checks, providerCheck(cfg), apiKeyCheck(cfg))

	if s.ContextCollector != nil {
		checks = append(checks, contextCheck(s.ContextCollector.Collect(ctx)))
	}

	if s.SecurityService != nil {
		if _, err := s.SecurityService.Evaluate("ls"); err != nil {
			checks = append(checks, fail("Guardrail", err.Error()))
		} else {
			checks = append(checks, ok("Guardrail", fmt.Sprintf("%d rules loaded", s.SecurityService.RuleCount())))
		}
	} else {
		checks = append(checks, warn("Guardrail", "security service not initialized"))
	}

	return domain.HealthReport{Checks: checks}, nil
}

func providerCheck(cfg domain.Config) domain.HealthCheck {
	if err := appconfig.Validate(cfg); err != nil {
		return fail("Provider", err.Error())
	}
	details := fmt.Sprintf("%s / %s", cfg.Type.DisplayName(), cfg.Model)
	if cfg.BaseURL != "" {
		details += fmt.Sprintf(" via %s", cfg.BaseURL)
	}
	return ok("Provider", details)
}

// apiKeyCheck never prints the key itself.
func apiKeyCheck(cfg domain.Config) domain.HealthCheck {
	if cfg.HasAPIKey() {
		return ok("API key", "configured")
	}
	if env := cfg.Type.EnvVar(); env != "" {
		return warn("API key", fmt.Sprintf("missing: set api_key or export %s", env))
	}
	return warn("API key", "missing")
}

func contextCheck(sc domain.SystemContext) domain.HealthCheck {
	var found, missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"os", sc.OS},
		{"os version", sc.OSVersion},
		{"arch", sc.Arch},
		{"shell", sc.Shell},
		{"cwd", sc.WorkingDir},
		{"home", sc.HomeDir},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		} else {
			found = append(found, field.name)
		}
	}
	details := fmt.Sprintf("collected %s; %d listing entries", strings.Join(found, ", "), sc.ListingTotal)
	if len(missing) > 0 {
		return warn("Context collector", details+"; missing "+strings.Join(missing, ", "))
	}
	return ok("Context collector", details)
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
