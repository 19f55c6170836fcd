package domain_test

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/shaid/internal/domain"
)

func TestParseProviderKind(t *testing.T) {
	tests := []struct {
		input     string
		want      domain.ProviderKind
		wantError bool
	}{
		{input: "openai", want: domain.ProviderOpenAI},
		{input: "OpenAI", want: domain.ProviderOpenAI},
		{input: "Claude", want: domain.ProviderClaude},
		{input: "anthropic", want: domain.ProviderClaude},
		{input: " GEMINI ", want: domain.ProviderGemini},
		{input: "google", want: domain.ProviderGemini},
		{input: "Custom", want: domain.ProviderCustom},
		{input: "ollama", wantError: true},
		{input: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseProviderKind(tt.input)
			if tt.wantError {
				if err == nil {
					t.Errorf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestProviderKind_EnvVar(t *testing.T) {
	tests := map[domain.ProviderKind]string{
		domain.ProviderOpenAI: "OPENAI_API_KEY",
		domain.ProviderClaude: "ANTHROPIC_API_KEY",
		domain.ProviderGemini: "GOOGLE_API_KEY",
		domain.ProviderCustom: "OPENAI_API_KEY",
	}
	for kind, want := range tests {
		if got := kind.EnvVar(); got != want {
			t.Errorf("%s.EnvVar() = %s, want %s", kind, got, want)
		}
	}
}

func TestProviderKind_DefaultModelIsSupported(t *testing.T) {
	for _, kind := range domain.ProviderKinds() {
		if !kind.Supports(kind.DefaultModel()) {
			t.Errorf("%s does not support its own default model %s", kind, kind.DefaultModel())
		}
	}
}

func TestProviderKind_UnmarshalYAML(t *testing.T) {
	var cfg domain.Config
	if err := yaml.Unmarshal([]byte("type: Claude\nmodel: claude-3-opus\n"), &cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Type != domain.ProviderClaude {
		t.Errorf("got %s, want claude", cfg.Type)
	}

	if err := yaml.Unmarshal([]byte("type: mistral\n"), &cfg); err == nil {
		t.Error("expected error for unknown provider type")
	}
}
