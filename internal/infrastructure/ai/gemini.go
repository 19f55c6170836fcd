package ai

import (
	"context"
	"net/http"
	"sync"

	"google.golang.org/genai"

	"github.com/doeshing/shaid/internal/domain"
)

// geminiProvider creates its client lazily because genai.NewClient takes a context.
type geminiProvider struct {
	cfg        domain.Config
	httpClient *http.Client

	once    sync.Once
	client  *genai.Client
	initErr error
}

func newGeminiProvider(cfg domain.Config, httpClient *http.Client) *geminiProvider {
	return &geminiProvider{cfg: cfg, httpClient: httpClient}
}

func (p *geminiProvider) Name() string {
	return string(domain.ProviderGemini)
}

func (p *geminiProvider) init(ctx context.Context) error {
	p.once.Do(func() {
		clientConfig := &genai.ClientConfig{
			APIKey:     p.cfg.APIKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: p.httpClient,
		}
		if p.cfg.BaseURL != "" {
			clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: p.cfg.BaseURL}
		}
		p.client, p.initErr = genai.NewClient(ctx, clientConfig)
	})
	return p.initErr
}

func (p *geminiProvider) Send(ctx context.Context, prompt domain.Prompt) (string, error) {
	if err := p.init(ctx); err != nil {
		return "", &domain.DispatchError{Kind: domain.ErrUnavailable, Provider: domain.ProviderGemini, Err: err}
	}

	config := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(float32(domain.DefaultTemperature)),
		MaxOutputTokens:   domain.DefaultMaxTokens,
		SystemInstruction: genai.NewContentFromText(prompt.Instruction, genai.RoleUser),
	}
	contents := genai.Text(prompt.UserMessage())

	response, err := p.client.Models.GenerateContent(ctx, p.cfg.Model, contents, config)
	if err != nil {
		return "", classifyError(domain.ProviderGemini, err)
	}
	return response.Text(), nil
}
