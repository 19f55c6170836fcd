package ai

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/doeshing/shaid/internal/domain"
)

type claudeProvider struct {
	model  string
	client anthropic.Client
}

func newClaudeProvider(cfg domain.Config, extra ...option.RequestOption) *claudeProvider {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	opts = append(opts, extra...)
	return &claudeProvider{
		model:  cfg.Model,
		client: anthropic.NewClient(opts...),
	}
}

func (p *claudeProvider) Name() string {
	return string(domain.ProviderClaude)
}

func (p *claudeProvider) Send(ctx context.Context, prompt domain.Prompt) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: domain.DefaultMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt.UserMessage())),
		},
		Temperature: anthropic.Float(domain.DefaultTemperature),
		System: []anthropic.TextBlockParam{
			{Text: prompt.Instruction},
		},
	}

	message, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", classifyError(domain.ProviderClaude, err)
	}

	var content strings.Builder
	for _, block := range message.Content {
		switch variant := block.AsAny().(type) {
		case anthropic.TextBlock:
			content.WriteString(variant.Text)
		}
	}
	return content.String(), nil
}
