package ai

import (
	"context"
	"time"

	"github.com/doeshing/shaid/internal/domain"
	"github.com/doeshing/shaid/internal/ports"
)

// Dispatcher sends a prompt to the configured provider and returns one command line.
// It makes exactly one request; there is no fallback to other providers.
type Dispatcher struct {
	factory ports.ProviderFactory
	logger  ports.Logger
}

func NewDispatcher(factory ports.ProviderFactory, logger ports.Logger) *Dispatcher {
	return &Dispatcher{factory: factory, logger: logger}
}

// Dispatch implements ports.Dispatcher.
func (d *Dispatcher) Dispatch(ctx context.Context, cfg domain.Config, prompt domain.Prompt) (string, error) {
	provider, err := d.factory.ForConfig(cfg)
	if err != nil {
		return "", err
	}

	start := time.Now()
	d.debug("dispatching prompt", map[string]interface{}{
		"provider":     provider.Name(),
		"model":        cfg.Model,
		"prompt_bytes": prompt.Len(),
		"truncated":    prompt.Truncated,
	})

	reply, err := provider.Send(ctx, prompt)
	if err != nil {
		if d.logger != nil {
			d.logger.Error("provider request failed", err, map[string]interface{}{
				"provider": provider.Name(),
				"elapsed":  time.Since(start).String(),
			})
		}
		return "", classifyError(cfg.Type, err)
	}
	d.debug("provider replied", map[string]interface{}{
		"provider":    provider.Name(),
		"elapsed":     time.Since(start).String(),
		"reply_bytes": len(reply),
	})

	return ExtractCommand(reply)
}

func (d *Dispatcher) debug(msg string, fields map[string]interface{}) {
	if d.logger != nil {
		d.logger.Debug(msg, fields)
	}
}

var _ ports.Dispatcher = (*Dispatcher)(nil)
