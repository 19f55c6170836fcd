package ai

import (
	"context"
	"math"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/doeshing/shaid/internal/domain"
)

// openAIProvider serves both OpenAI and Custom endpoints, which speak the same protocol.
type openAIProvider struct {
	kind   domain.ProviderKind
	model  string
	client *openai.Client
}

func newOpenAIProvider(cfg domain.Config, httpClient *http.Client) *openAIProvider {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	if httpClient != nil {
		config.HTTPClient = httpClient
	}
	return &openAIProvider{
		kind:   cfg.Type,
		model:  cfg.Model,
		client: openai.NewClientWithConfig(config),
	}
}

func (p *openAIProvider) Name() string {
	return string(p.kind)
}

func (p *openAIProvider) Send(ctx context.Context, prompt domain.Prompt) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.Instruction},
			{Role: openai.ChatMessageRoleUser, Content: prompt.UserMessage()},
		},
	}
	if p.kind == domain.ProviderOpenAI {
		req.MaxCompletionTokens = domain.DefaultMaxTokens
	} else {
		// many compatible servers only understand the older field
		req.MaxTokens = domain.DefaultMaxTokens
	}
	if !isReasoningModel(p.model) {
		// a zero temperature would be dropped by omitempty
		req.Temperature = math.SmallestNonzeroFloat32
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", classifyError(p.kind, err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// isReasoningModel reports o-series models, which reject a custom temperature.
func isReasoningModel(model string) bool {
	model = strings.ToLower(model)
	for _, prefix := range []string{"o1", "o3", "o4"} {
		if strings.HasPrefix(model, prefix) {
			return true
		}
	}
	return false
}
