// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). Following the Ports and Adapters (Hexagonal) pattern,
// these interfaces allow the application to remain independent of specific
// implementations like the config file, provider SDKs, or CLI frameworks.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., Provider, ConfigProvider)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/doeshing/shaid/internal/domain"
)

// ConfigProvider resolves the effective configuration for one invocation.
// Implementations read the platform config file and apply overrides and environment keys.
type ConfigProvider interface {
	Resolve(context.Context, domain.Overrides) (domain.Config, error)
	Path() (string, error)
}

// ContextCollector gathers best-effort facts about the local machine to enrich prompts.
// It never fails: fields it cannot determine are left empty.
type ContextCollector interface {
	Collect(context.Context) domain.SystemContext
}

// ProviderFactory builds provider instances for a resolved configuration.
// It rejects incomplete or incompatible configurations before any network traffic.
type ProviderFactory interface {
	ForConfig(domain.Config) (Provider, error)
}

// Provider is the capability of sending one assembled prompt to a hosted model
// and returning its raw text reply.
type Provider interface {
	Name() string
	Send(context.Context, domain.Prompt) (string, error)
}

// Dispatcher turns a prompt into a single shell command using the configured provider.
type Dispatcher interface {
	Dispatch(context.Context, domain.Config, domain.Prompt) (string, error)
}

// SecurityService evaluates commands against risk rules.
// This implements the guardrail system that warns users about potentially harmful commands.
type SecurityService interface {
	Evaluate(command string) (domain.RiskAssessment, error)
	RuleCount() int
}

// Clipboard provides cross-platform clipboard integration for copying commands.
type Clipboard interface {
	Copy(text string) error
	Enabled() bool
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
