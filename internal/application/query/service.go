package query

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/doeshing/shaid/internal/application/prompt"
	"github.com/doeshing/shaid/internal/domain"
	"github.com/doeshing/shaid/internal/ports"
)

// Stages reported in *domain.GenerationError.
const (
	StageInput    = "input"
	StageConfig   = "resolve config"
	StageDispatch = "dispatch"
	StageExtract  = "extract command"
)

// Service orchestrates the query lifecycle end-to-end.
type Service struct {
	ConfigProvider   ports.ConfigProvider
	ContextCollector ports.ContextCollector
	Dispatcher       ports.Dispatcher
	SecurityService  ports.SecurityService
	Clipboard        ports.Clipboard
	Logger           ports.Logger
}

// Preparation is everything known before a provider is contacted.
type Preparation struct {
	Config   domain.Config
	Context  domain.SystemContext
	Prompt   domain.Prompt
	Warnings []string
}

// Prepare resolves configuration and collects system context concurrently, then
// assembles the prompt. Nothing is sent over the network.
func (s *Service) Prepare(ctx context.Context, req domain.QueryRequest) (Preparation, error) {
	if s.ConfigProvider == nil || s.ContextCollector == nil || s.Logger == nil {
		return Preparation{}, errors.New("query.Service dependencies not satisfied")
	}
	if prompt.Normalize(req.Prompt) == "" {
		return Preparation{}, &domain.GenerationError{Stage: StageInput, Err: errors.New("describe the command you need")}
	}

	var (
		prep   Preparation
		cfgErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cfg, err := s.ConfigProvider.Resolve(gctx, req.Overrides)
		if err != nil && !errors.Is(err, domain.ErrConfigUnwritable) {
			return err
		}
		prep.Config = cfg
		cfgErr = err
		return nil
	})
	g.Go(func() error {
		prep.Context = s.ContextCollector.Collect(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return Preparation{}, &domain.GenerationError{Stage: StageConfig, Err: err}
	}

	if cfgErr != nil {
		s.Logger.Warn("default configuration not persisted", map[string]interface{}{"error": cfgErr.Error()})
		prep.Warnings = append(prep.Warnings, fmt.Sprintf("warning: %v", cfgErr))
	}

	prep.Prompt = prompt.Assemble(req.Prompt, prep.Context)
	if prep.Prompt.Truncated {
		s.Logger.Debug("prompt truncated", map[string]interface{}{"bytes": prep.Prompt.Len()})
	}
	return prep, nil
}

// Run processes a single natural-language query.
func (s *Service) Run(ctx context.Context, req domain.QueryRequest) (domain.QueryResponse, error) {
	if s.Dispatcher == nil || s.SecurityService == nil {
		return domain.QueryResponse{}, errors.New("query.Service dependencies not satisfied")
	}

	prep, err := s.Prepare(ctx, req)
	if err != nil {
		return domain.QueryResponse{}, err
	}

	s.Logger.Info("calling provider", map[string]interface{}{
		"provider": string(prep.Config.Type),
		"model":    prep.Config.Model,
	})

	command, err := s.Dispatcher.Dispatch(ctx, prep.Config, prep.Prompt)
	if err != nil {
		stage := StageDispatch
		if errors.Is(err, domain.ErrNoCommandExtracted) {
			stage = StageExtract
		}
		return domain.QueryResponse{}, &domain.GenerationError{Stage: stage, Err: err}
	}

	risk, err := s.SecurityService.Evaluate(command)
	if err != nil {
		s.Logger.Warn("guardrail evaluation failed", map[string]interface{}{"error": err.Error()})
		risk = domain.RiskAssessment{Level: domain.RiskSafe}
	}

	resp := domain.QueryResponse{
		Command:  command,
		Risk:     risk,
		Prompt:   prep.Prompt,
		Config:   prep.Config,
		Context:  prep.Context,
		Warnings: prep.Warnings,
	}

	if req.CopyToClipboard {
		switch {
		case s.Clipboard == nil || !s.Clipboard.Enabled():
			resp.Warnings = append(resp.Warnings, "warning: clipboard is not available on this system")
		default:
			if err := s.Clipboard.Copy(command); err != nil {
				s.Logger.Warn("clipboard copy failed", map[string]interface{}{"error": err.Error()})
				resp.Warnings = append(resp.Warnings, fmt.Sprintf("warning: copy to clipboard failed: %v", err))
			} else {
				resp.Copied = true
			}
		}
	}

	return resp, nil
}
