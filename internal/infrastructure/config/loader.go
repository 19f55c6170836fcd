package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/shaid/internal/domain"
	"github.com/doeshing/shaid/internal/pkg/filesystem"
	"github.com/doeshing/shaid/internal/ports"
)

const (
	appDirName     = "shaid"
	configFileName = "config.yaml"
)

// FileLoader resolves configuration from <user config dir>/shaid/config.yaml
// (overridable via --config or SHAID_CONFIG).
type FileLoader struct {
	overridePath  string
	getenv        func(string) string
	userConfigDir func() (string, error)
	userHomeDir   func() string
}

// NewFileLoader builds a new loader. An empty path selects the platform default.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{
		overridePath:  path,
		getenv:        os.Getenv,
		userConfigDir: os.UserConfigDir,
		userHomeDir:   filesystem.UserHomeDir,
	}
}

// Path returns the config file location without touching the filesystem.
func (l *FileLoader) Path() (string, error) {
	if l.overridePath != "" {
		return l.expandPath(l.overridePath), nil
	}
	if custom := l.getenv(domain.EnvConfigPath); custom != "" {
		return l.expandPath(custom), nil
	}
	dir, err := l.userConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config directory: %w", err)
	}
	return filepath.Join(dir, appDirName, configFileName), nil
}

// Resolve implements ports.ConfigProvider.
//
// A missing file is replaced by the default configuration, which is also persisted.
// When persisting fails the default is still returned together with a
// *domain.ConfigError of kind domain.ErrConfigUnwritable.
func (l *FileLoader) Resolve(ctx context.Context, overrides domain.Overrides) (domain.Config, error) {
	cfg, loadErr := l.Load(ctx)
	if loadErr != nil && !errors.Is(loadErr, domain.ErrConfigUnwritable) {
		return domain.Config{}, loadErr
	}

	cfg = applyOverrides(cfg, overrides)
	if !cfg.HasAPIKey() {
		if envVar := cfg.Type.EnvVar(); envVar != "" {
			cfg.APIKey = strings.TrimSpace(l.getenv(envVar))
		}
	}
	return cfg, loadErr
}

// Load reads the file as stored, with defaults hydrated but no overrides or environment applied.
// Without a usable location the in-memory default is returned, like an unwritable file.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path, err := l.Path()
	if err != nil {
		return domain.DefaultConfig(), &domain.ConfigError{Kind: domain.ErrConfigUnwritable, Path: path, Err: err}
	}
	return l.load(path)
}

func (l *FileLoader) load(path string) (domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := domain.DefaultConfig()
			if err := writeDefault(path, cfg); err != nil {
				return cfg, &domain.ConfigError{Kind: domain.ErrConfigUnwritable, Path: path, Err: err}
			}
			return cfg, nil
		}
		return domain.Config{}, &domain.ConfigError{Kind: domain.ErrConfigMalformed, Path: path, Err: err}
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, &domain.ConfigError{Kind: domain.ErrConfigMalformed, Path: path, Err: err}
	}

	return hydrateDefaults(cfg), nil
}

func ensureConfigDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, domain.DirectoryPermissions)
}

func writeDefault(path string, cfg domain.Config) error {
	if err := ensureConfigDir(path); err != nil {
		return err
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.SecureFilePermissions)
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.Type == "" {
		cfg.Type = domain.ProviderOpenAI
	}
	cfg.Model = strings.TrimSpace(cfg.Model)
	cfg.Model = cfg.ModelOrDefault()
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	return cfg
}

// applyOverrides layers per-invocation values over the file. Switching the provider
// kind discards the file's model, key and base URL, which belong to the other vendor.
func applyOverrides(cfg domain.Config, o domain.Overrides) domain.Config {
	if o.Provider != "" && o.Provider != cfg.Type {
		cfg = domain.Config{Type: o.Provider, Model: o.Provider.DefaultModel()}
	}
	if model := strings.TrimSpace(o.Model); model != "" {
		cfg.Model = model
	}
	if baseURL := strings.TrimSpace(o.BaseURL); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if key := strings.TrimSpace(o.APIKey); key != "" {
		cfg.APIKey = key
	}
	return cfg
}

func (l *FileLoader) expandPath(path string) string {
	return filesystem.ExpandHome(path, l.userHomeDir())
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
