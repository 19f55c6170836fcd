package domain_test

import (
	"testing"

	"github.com/doeshing/shaid/internal/domain"
)

func TestHealthReportFailed(t *testing.T) {
	report := domain.HealthReport{Checks: []domain.HealthCheck{
		{Name: "Config file", Status: domain.HealthOK},
		{Name: "API key", Status: domain.HealthWarn},
	}}
	if report.Failed() {
		t.Fatal("warnings alone must not fail the report")
	}

	report.Checks = append(report.Checks, domain.HealthCheck{Name: "Provider", Status: domain.HealthError})
	if !report.Failed() {
		t.Fatal("expected an error check to fail the report")
	}
}
