package domain

// Config mirrors the shaid config.yaml file.
type Config struct {
	Type    ProviderKind `yaml:"type"`
	Model   string       `yaml:"model"`
	APIKey  string       `yaml:"api_key"`
	BaseURL string       `yaml:"base_url,omitempty"`
}

// Overrides carries per-invocation values that take precedence over the file.
type Overrides struct {
	Provider ProviderKind
	Model    string
	APIKey   string
	BaseURL  string
}

// Empty reports whether no override is set.
func (o Overrides) Empty() bool {
	return o.Provider == "" && o.Model == "" && o.APIKey == "" && o.BaseURL == ""
}

// DefaultConfig returns the baseline configuration written on first run.
func DefaultConfig() Config {
	return Config{
		Type:   ProviderOpenAI,
		Model:  ProviderOpenAI.DefaultModel(),
		APIKey: "",
	}
}
