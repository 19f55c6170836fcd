// Package domain defines core business entities and value objects for shaid.
//
// This file contains the provider kinds and the static compatibility table that
// decides which model identifiers each provider can serve. The domain layer is
// independent of infrastructure concerns.
package domain

import (
	"fmt"
	"strings"
)

// ProviderKind enumerates the supported LLM backends.
type ProviderKind string

const (
	ProviderOpenAI ProviderKind = "openai"
	ProviderClaude ProviderKind = "claude"
	ProviderGemini ProviderKind = "gemini"
	ProviderCustom ProviderKind = "custom"
)

// providerSpec is one row of the compatibility table.
type providerSpec struct {
	displayName   string
	envVar        string
	defaultModel  string
	modelPrefixes []string
}

var providerTable = map[ProviderKind]providerSpec{
	ProviderOpenAI: {
		displayName:   "OpenAI",
		envVar:        "OPENAI_API_KEY",
		defaultModel:  "gpt-4o",
		modelPrefixes: []string{"gpt-", "o1", "o3", "o4", "chatgpt-"},
	},
	ProviderClaude: {
		displayName:   "Claude",
		envVar:        "ANTHROPIC_API_KEY",
		defaultModel:  "claude-3-5-sonnet-20241022",
		modelPrefixes: []string{"claude-"},
	},
	ProviderGemini: {
		displayName:   "Gemini",
		envVar:        "GOOGLE_API_KEY",
		defaultModel:  "gemini-1.5-pro",
		modelPrefixes: []string{"gemini-", "gemma-"},
	},
	// Custom endpoints speak the OpenAI chat completions protocol and may host any model.
	ProviderCustom: {
		displayName:  "Custom",
		envVar:       "OPENAI_API_KEY",
		defaultModel: "gpt-4o",
	},
}

var providerAliases = map[string]ProviderKind{
	"openai":    ProviderOpenAI,
	"gpt":       ProviderOpenAI,
	"claude":    ProviderClaude,
	"anthropic": ProviderClaude,
	"gemini":    ProviderGemini,
	"google":    ProviderGemini,
	"custom":    ProviderCustom,
}

// ParseProviderKind parses a provider name case-insensitively.
func ParseProviderKind(value string) (ProviderKind, error) {
	kind, ok := providerAliases[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return "", fmt.Errorf("unknown provider type %q (expected openai, claude, gemini or custom)", value)
	}
	return kind, nil
}

// ProviderKinds returns every supported kind in a stable order.
func ProviderKinds() []ProviderKind {
	return []ProviderKind{ProviderOpenAI, ProviderClaude, ProviderGemini, ProviderCustom}
}

// Valid reports whether the kind is part of the compatibility table.
func (k ProviderKind) Valid() bool {
	_, ok := providerTable[k]
	return ok
}

// DisplayName returns the vendor name used in messages.
func (k ProviderKind) DisplayName() string {
	if spec, ok := providerTable[k]; ok {
		return spec.displayName
	}
	return string(k)
}

// EnvVar returns the environment variable holding the API key for this kind.
func (k ProviderKind) EnvVar() string {
	return providerTable[k].envVar
}

// DefaultModel returns the baseline model identifier for this kind.
func (k ProviderKind) DefaultModel() string {
	return providerTable[k].defaultModel
}

// RequiresBaseURL reports whether the kind has no built-in endpoint.
func (k ProviderKind) RequiresBaseURL() bool {
	return k == ProviderCustom
}

// Supports reports whether the model identifier is servable by this kind.
func (k ProviderKind) Supports(model string) bool {
	spec, ok := providerTable[k]
	if !ok {
		return false
	}
	model = strings.ToLower(strings.TrimSpace(model))
	if model == "" {
		return false
	}
	if len(spec.modelPrefixes) == 0 {
		return true
	}
	for _, prefix := range spec.modelPrefixes {
		if strings.HasPrefix(model, prefix) {
			return true
		}
	}
	return false
}

// UnmarshalYAML accepts any spelling ParseProviderKind understands.
func (k *ProviderKind) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	if strings.TrimSpace(raw) == "" {
		*k = ""
		return nil
	}
	kind, err := ParseProviderKind(raw)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
