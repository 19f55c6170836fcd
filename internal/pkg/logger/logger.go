// Package logger adapts go.uber.org/zap to the ports.Logger facade.
package logger

import (
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/doeshing/shaid/internal/ports"
)

// ZapLogger routes ports.Logger calls to a zap.Logger.
type ZapLogger struct {
	base *zap.Logger
}

// New wraps an existing zap logger. A nil logger discards everything.
func New(base *zap.Logger) *ZapLogger {
	if base == nil {
		base = zap.NewNop()
	}
	return &ZapLogger{base: base}
}

// NewCLI builds the logger used by the command line. Verbose mode writes
// human-readable debug output to stderr; otherwise nothing is logged, so
// stdout and stderr stay reserved for the command and its diagnostics.
func NewCLI(verbose bool) (*ZapLogger, error) {
	if !verbose {
		return New(nil), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	base, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return New(base), nil
}

// VerboseFromEnv reports whether SHAID_DEBUG-style values ask for verbose output.
func VerboseFromEnv(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// VerboseFromProcessEnv reads the named variable from the process environment.
func VerboseFromProcessEnv(name string) bool {
	return VerboseFromEnv(os.Getenv(name))
}

func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.base.Debug(msg, toFields(fields)...)
}

func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.base.Info(msg, toFields(fields)...)
}

func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.base.Warn(msg, toFields(fields)...)
}

func (l *ZapLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.base.Error(msg, append(toFields(fields), zap.Error(err))...)
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.base.Sync()
}

// toFields converts in key order so output is stable.
func toFields(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]zap.Field, 0, len(keys))
	for _, key := range keys {
		out = append(out, zap.Any(key, fields[key]))
	}
	return out
}

var _ ports.Logger = (*ZapLogger)(nil)
