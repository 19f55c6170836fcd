package doctor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/doeshing/shaid/internal/domain"
	"github.com/doeshing/shaid/internal/infrastructure/security"
)

type stubConfigProvider struct {
	cfg domain.Config
	err error
}

func (s stubConfigProvider) Resolve(context.Context, domain.Overrides) (domain.Config, error) {
	return s.cfg, s.err
}

func (s stubConfigProvider) Path() (string, error) {
	return "/home/me/.config/shaid/config.yaml", nil
}

type stubCollector struct {
	sc domain.SystemContext
}

func (s stubCollector) Collect(context.Context) domain.SystemContext {
	return s.sc
}

func findCheck(t *testing.T, report domain.HealthReport, name string) domain.HealthCheck {
	t.Helper()
	for _, check := range report.Checks {
		if check.Name == name {
			return check
		}
	}
	t.Fatalf("check %q not found in %+v", name, report.Checks)
	return domain.HealthCheck{}
}

func TestDoctorHealthyConfiguration(t *testing.T) {
	svc := &Service{
		ConfigProvider:   stubConfigProvider{cfg: domain.Config{Type: domain.ProviderClaude, Model: "claude-3-5-sonnet-20241022", APIKey: "ant-secret-key"}},
		ContextCollector: stubCollector{sc: domain.SystemContext{
			OS: "linux", OSVersion: "Ubuntu 24.04", Arch: "amd64", Shell: "bash", WorkingDir: "/srv", HomeDir: "/home/me", ListingTotal: 3,
		}},
		SecurityService:  security.NewDefaultGuardrail(),
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, check := range report.Checks {
		if check.Status != domain.HealthOK {
			t.Errorf("expected %s to be ok, got %s: %s", check.Name, check.Status, check.Details)
		}
		if strings.Contains(check.Details, "ant-secret-key") {
			t.Errorf("check %s leaks the API key", check.Name)
		}
	}
}

func TestDoctorReportsProblems(t *testing.T) {
	svc := &Service{
		ConfigProvider:   stubConfigProvider{cfg: domain.Config{Type: domain.ProviderGemini, Model: "gpt-4o"}},
		ContextCollector: stubCollector{sc: domain.SystemContext{OS: "linux"}},
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if findCheck(t, report, "Provider").Status != domain.HealthError {
		t.Error("incompatible model should fail the provider check")
	}
	key := findCheck(t, report, "API key")
	if key.Status != domain.HealthWarn || !strings.Contains(key.Details, "GOOGLE_API_KEY") {
		t.Errorf("expected missing key warning naming GOOGLE_API_KEY, got %+v", key)
	}
	if findCheck(t, report, "Context collector").Status != domain.HealthWarn {
		t.Error("missing context fields should warn")
	}
	if findCheck(t, report, "Guardrail").Status != domain.HealthWarn {
		t.Error("missing guardrail should warn")
	}
}

func TestDoctorMalformedConfig(t *testing.T) {
	cfgErr := &domain.ConfigError{Kind: domain.ErrConfigMalformed, Path: "/x", Err: errors.New("yaml: line 1")}
	svc := &Service{ConfigProvider: stubConfigProvider{err: cfgErr}}

	report, err := svc.Run(context.Background())

	if !errors.Is(err, domain.ErrConfigMalformed) {
		t.Fatalf("expected malformed error, got %v", err)
	}
	if findCheck(t, report, "Config file").Status != domain.HealthError {
		t.Error("expected config check to fail")
	}
}
