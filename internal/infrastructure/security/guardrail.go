package security

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/shaid/assets"
	"github.com/doeshing/shaid/internal/domain"
	"github.com/doeshing/shaid/internal/ports"
)

// RulesFileName is looked up next to the config file.
const RulesFileName = "guardrail.yaml"

// Guardrail implements the SecurityService port. It only labels commands;
// nothing is ever executed or blocked.
type Guardrail struct {
	patterns []compiledPattern
	source   string
}

type compiledPattern struct {
	re   *regexp.Regexp
	rule DangerPattern
}

// DangerPattern describes a regex-based guardrail rule.
type DangerPattern struct {
	Pattern string `yaml:"pattern"`
	Level   string `yaml:"level"`
	Message string `yaml:"message"`
}

// RulesFile is the YAML schema root.
type RulesFile struct {
	Rules struct {
		DangerPatterns []DangerPattern `yaml:"danger_patterns"`
	} `yaml:"rules"`
}

// NewGuardrail loads rules from path. A missing file, or a file without
// patterns, yields the built-in defaults.
func NewGuardrail(path string) (*Guardrail, error) {
	rules, source, err := loadRules(path)
	if err != nil {
		return nil, err
	}
	return compile(rules.Rules.DangerPatterns, source)
}

// NewDefaultGuardrail returns a guardrail with only the built-in rules.
func NewDefaultGuardrail() *Guardrail {
	g, err := compile(defaultPatterns(), "built-in")
	if err != nil {
		panic(err)
	}
	return g
}

// RulesPath returns the rules file location for a config file path.
func RulesPath(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), RulesFileName)
}

func compile(patterns []DangerPattern, source string) (*Guardrail, error) {
	compiled := make([]compiledPattern, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern.Pattern)
		if err != nil {
			return nil, fmt.Errorf("guardrail rule %q: %w", pattern.Pattern, err)
		}
		compiled = append(compiled, compiledPattern{re: re, rule: pattern})
	}
	return &Guardrail{patterns: compiled, source: source}, nil
}

// Evaluate implements ports.SecurityService.
func (g *Guardrail) Evaluate(command string) (domain.RiskAssessment, error) {
	if g == nil {
		return domain.RiskAssessment{}, errors.New("guardrail nil")
	}
	assessment := domain.RiskAssessment{Level: domain.RiskSafe}
	for _, pattern := range g.patterns {
		if !pattern.re.MatchString(command) {
			continue
		}
		if level := parseRiskLevel(pattern.rule.Level); level.Severity() > assessment.Level.Severity() {
			assessment.Level = level
		}
		assessment.Reasons = append(assessment.Reasons, pattern.rule.Message)
		assessment.MatchedRules = append(assessment.MatchedRules, pattern.rule.Pattern)
	}
	return assessment, nil
}

// RuleCount implements ports.SecurityService.
func (g *Guardrail) RuleCount() int {
	if g == nil {
		return 0
	}
	return len(g.patterns)
}

// Source names where the rules came from: a file path or "built-in".
func (g *Guardrail) Source() string {
	return g.source
}

func loadRules(path string) (RulesFile, string, error) {
	var rules RulesFile
	if path == "" {
		rules.Rules.DangerPatterns = defaultPatterns()
		return rules, "built-in", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			rules.Rules.DangerPatterns = defaultPatterns()
			return rules, "built-in", nil
		}
		return RulesFile{}, "", err
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return RulesFile{}, "", fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rules.Rules.DangerPatterns) == 0 {
		rules.Rules.DangerPatterns = defaultPatterns()
		return rules, "built-in", nil
	}
	return rules, path, nil
}

func parseRiskLevel(value string) domain.RiskLevel {
	switch strings.ToLower(value) {
	case "low":
		return domain.RiskLow
	case "medium":
		return domain.RiskMedium
	case "high":
		return domain.RiskHigh
	case "critical":
		return domain.RiskCritical
	default:
		return domain.RiskSafe
	}
}

// defaultPatterns parses the embedded rules. They are covered by tests, so a
// parse failure is a build defect.
func defaultPatterns() []DangerPattern {
	var rules RulesFile
	if err := yaml.Unmarshal(assets.DefaultGuardrailYAML, &rules); err != nil {
		panic(fmt.Sprintf("embedded guardrail rules: %v", err))
	}
	return rules.Rules.DangerPatterns
}

var _ ports.SecurityService = (*Guardrail)(nil)
