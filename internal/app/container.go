package app

import (
	"context"
	"fmt"

	"github.com/doeshing/shaid/internal/application/doctor"
	"github.com/doeshing/shaid/internal/application/query"
	"github.com/doeshing/shaid/internal/infrastructure/ai"
	"github.com/doeshing/shaid/internal/infrastructure/config"
	contextcollector "github.com/doeshing/shaid/internal/infrastructure/context"
	"github.com/doeshing/shaid/internal/infrastructure/security"
	"github.com/doeshing/shaid/internal/pkg/logger"
	"github.com/doeshing/shaid/internal/ports"
)

// Settings are the process-level inputs known before any command runs.
type Settings struct {
	ConfigPath string
	Verbose    bool
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	QueryService     *query.Service
	DoctorService    *doctor.Service
	ConfigLoader     *config.FileLoader
	ContextCollector ports.ContextCollector
	Guardrail        *security.Guardrail
	Logger           *logger.ZapLogger
	// Warnings are non-fatal problems found while wiring, meant for stderr.
	Warnings []string
}

// BuildContainer constructs the dependency graph. Nothing here touches the network.
func BuildContainer(_ context.Context, settings Settings) (*Container, error) {
	log, err := logger.NewCLI(settings.Verbose)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cfgLoader := config.NewFileLoader(settings.ConfigPath)
	collector := contextcollector.NewBasicCollector()

	var warnings []string
	guardrail := security.NewDefaultGuardrail()
	if path, err := cfgLoader.Path(); err == nil {
		loaded, err := security.NewGuardrail(security.RulesPath(path))
		if err != nil {
			log.Warn("guardrail rules ignored", map[string]interface{}{"error": err.Error()})
			warnings = append(warnings, fmt.Sprintf("warning: guardrail rules ignored, using built-in rules: %v", err))
		} else {
			guardrail = loaded
		}
	}
	log.Debug("guardrail ready", map[string]interface{}{
		"source": guardrail.Source(),
		"rules":  guardrail.RuleCount(),
	})

	dispatcher := ai.NewDispatcher(ai.NewFactory(), log)

	queryService := &query.Service{
		ConfigProvider:   cfgLoader,
		ContextCollector: collector,
		Dispatcher:       dispatcher,
		SecurityService:  guardrail,
		Logger:           log,
	}

	doctorService := &doctor.Service{
		ConfigProvider:   cfgLoader,
		SecurityService:  guardrail,
		ContextCollector: collector,
	}

	return &Container{
		QueryService:     queryService,
		DoctorService:    doctorService,
		ConfigLoader:     cfgLoader,
		ContextCollector: collector,
		Guardrail:        guardrail,
		Logger:           log,
		Warnings:         warnings,
	}, nil
}
