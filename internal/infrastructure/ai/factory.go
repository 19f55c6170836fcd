package ai

import (
	"net/http"

	"github.com/anthropics/anthropic-sdk-go/option"

	appconfig "github.com/doeshing/shaid/internal/application/config"
	"github.com/doeshing/shaid/internal/domain"
	"github.com/doeshing/shaid/internal/ports"
)

// Factory builds SDK-backed providers for a resolved configuration.
type Factory struct {
	httpClient *http.Client
	maxRetries int
}

// FactoryOption customizes a Factory.
type FactoryOption func(*Factory)

// WithHTTPClient overrides the HTTP client shared by every SDK.
func WithHTTPClient(client *http.Client) FactoryOption {
	return func(f *Factory) {
		f.httpClient = client
	}
}

// WithMaxRetries sets how often SDKs that support it retry transient failures.
// A negative value keeps the SDK default.
func WithMaxRetries(n int) FactoryOption {
	return func(f *Factory) {
		f.maxRetries = n
	}
}

func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{
		httpClient: &http.Client{Timeout: domain.DefaultHTTPClientTimeout},
		maxRetries: -1,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ForConfig implements ports.ProviderFactory. Incomplete or incompatible configurations
// are rejected with a *domain.DispatchError before any client is built.
func (f *Factory) ForConfig(cfg domain.Config) (ports.Provider, error) {
	if err := appconfig.ValidateForDispatch(cfg); err != nil {
		return nil, err
	}

	switch cfg.Type {
	case domain.ProviderOpenAI, domain.ProviderCustom:
		return newOpenAIProvider(cfg, f.httpClient), nil
	case domain.ProviderClaude:
		return newClaudeProvider(cfg, f.anthropicOptions()...), nil
	case domain.ProviderGemini:
		return newGeminiProvider(cfg, f.httpClient), nil
	default:
		return nil, &domain.DispatchError{Kind: domain.ErrUnavailable, Provider: cfg.Type}
	}
}

func (f *Factory) anthropicOptions() []option.RequestOption {
	opts := []option.RequestOption{option.WithHTTPClient(f.httpClient)}
	if f.maxRetries >= 0 {
		opts = append(opts, option.WithMaxRetries(f.maxRetries))
	}
	return opts
}

var _ ports.ProviderFactory = (*Factory)(nil)
