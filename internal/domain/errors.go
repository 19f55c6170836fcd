package domain

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Typed errors below unwrap to one of these so callers can use errors.Is.
var (
	ErrConfigMalformed    = errors.New("configuration file is malformed")
	ErrConfigUnwritable   = errors.New("default configuration could not be written")
	ErrAuth               = errors.New("authentication failed")
	ErrNetwork            = errors.New("network failure")
	ErrUnavailable        = errors.New("provider or model unavailable")
	ErrNoCommandExtracted = errors.New("no command could be extracted from the reply")
)

// ConfigError reports a failure of the configuration resolver.
type ConfigError struct {
	Kind error
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *ConfigError) Unwrap() []error {
	return joinCauses(e.Kind, e.Err)
}

// DispatchError reports a terminal failure talking to a provider.
type DispatchError struct {
	Kind     error
	Provider ProviderKind
	Err      error
}

func (e *DispatchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Provider.DisplayName(), e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Provider.DisplayName(), e.Kind, e.Err)
}

func (e *DispatchError) Unwrap() []error {
	return joinCauses(e.Kind, e.Err)
}

func joinCauses(errs ...error) []error {
	out := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			out = append(out, err)
		}
	}
	return out
}

// GenerationError wraps any failure of a single generation run with the stage it happened in.
type GenerationError struct {
	Stage string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// ErrorCategory groups errors for exit codes and user-facing messages.
type ErrorCategory int

const (
	CategoryNone ErrorCategory = iota
	CategoryUnknown
	CategoryConfig
	CategoryAuth
	CategoryNetwork
	CategoryUnavailable
	CategoryNoCommand
)

// Classify maps an error chain to its category.
func Classify(err error) ErrorCategory {
	switch {
	case err == nil:
		return CategoryNone
	case errors.Is(err, ErrNoCommandExtracted):
		return CategoryNoCommand
	case errors.Is(err, ErrAuth):
		return CategoryAuth
	case errors.Is(err, ErrNetwork):
		return CategoryNetwork
	case errors.Is(err, ErrUnavailable):
		return CategoryUnavailable
	case errors.Is(err, ErrConfigMalformed), errors.Is(err, ErrConfigUnwritable):
		return CategoryConfig
	default:
		return CategoryUnknown
	}
}

// ExitCode returns the process exit status for the category.
func (c ErrorCategory) ExitCode() int {
	switch c {
	case CategoryNone:
		return 0
	case CategoryConfig:
		return 2
	case CategoryAuth:
		return 3
	case CategoryNetwork:
		return 4
	case CategoryUnavailable:
		return 5
	case CategoryNoCommand:
		return 6
	default:
		return 1
	}
}

// Summary is a one-line human description of the category.
func (c ErrorCategory) Summary() string {
	switch c {
	case CategoryConfig:
		return "configuration problem"
	case CategoryAuth:
		return "no provider answer: authentication failed or API key missing"
	case CategoryNetwork:
		return "no provider answer: network failure"
	case CategoryUnavailable:
		return "no provider answer: provider or model unavailable"
	case CategoryNoCommand:
		return "the provider answered, but no usable command could be extracted"
	default:
		return "unexpected error"
	}
}
