package security

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/doeshing/shaid/internal/domain"
)

func TestGuardrailFlagsCriticalCommands(t *testing.T) {
	guardrail, err := NewGuardrail("")
	if err != nil {
		t.Fatalf("NewGuardrail error: %v", err)
	}

	for _, command := range []string{"rm -rf /", "dd if=/dev/zero of=/dev/sda", ":(){ :|:& };:", "mkfs.ext4 /dev/sdb1"} {
		result, err := guardrail.Evaluate(command)
		if err != nil {
			t.Fatalf("Evaluate error: %v", err)
		}
		if result.Level != domain.RiskCritical || !result.Risky() {
			t.Errorf("%q: expected critical, got %+v", command, result)
		}
	}
}

func TestGuardrailAllowsSafeCommand(t *testing.T) {
	guardrail := NewDefaultGuardrail()

	for _, command := range []string{"ls -la", "find . -type f -mtime -7", "rm -rf ./build"} {
		result, err := guardrail.Evaluate(command)
		if err != nil {
			t.Fatalf("Evaluate error: %v", err)
		}
		if result.Level != domain.RiskSafe || len(result.Reasons) != 0 {
			t.Errorf("%q: expected safe, got %+v", command, result)
		}
	}
}

func TestGuardrailProtectedPath(t *testing.T) {
	guardrail := NewDefaultGuardrail()
	result, err := guardrail.Evaluate("sudo rm -rf /etc")
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if result.Level != domain.RiskHigh {
		t.Fatalf("expected high risk for a system path, got %+v", result)
	}
	if len(result.Reasons) != 2 {
		t.Fatalf("expected the sudo and system path reasons, got %v", result.Reasons)
	}
}

func TestGuardrailCustomRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, RulesFileName)
	rules := "rules:\n  danger_patterns:\n    - pattern: 'kubectl\\s+delete'\n      level: high\n      message: Deletes cluster resources\n"
	if err := os.WriteFile(path, []byte(rules), 0o600); err != nil {
		t.Fatal(err)
	}

	guardrail, err := NewGuardrail(RulesPath(filepath.Join(dir, "config.yaml")))
	if err != nil {
		t.Fatalf("NewGuardrail error: %v", err)
	}
	if guardrail.RuleCount() != 1 || guardrail.Source() != path {
		t.Fatalf("expected the custom rule file to be used, got %d rules from %s", guardrail.RuleCount(), guardrail.Source())
	}

	result, _ := guardrail.Evaluate("kubectl delete pod web-0")
	if result.Level != domain.RiskHigh {
		t.Fatalf("expected high risk, got %+v", result)
	}
}

func TestGuardrailInvalidRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, RulesFileName)
	if err := os.WriteFile(path, []byte("rules:\n  danger_patterns:\n    - pattern: '('\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewGuardrail(path); err == nil {
		t.Fatal("expected invalid regex to fail")
	}
}

func TestGuardrailMissingFileUsesDefaults(t *testing.T) {
	guardrail, err := NewGuardrail(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("NewGuardrail error: %v", err)
	}
	if guardrail.RuleCount() != len(defaultPatterns()) || guardrail.Source() != "built-in" {
		t.Fatalf("expected defaults, got %d rules from %s", guardrail.RuleCount(), guardrail.Source())
	}
}

func TestEmbeddedRulesHaveLevels(t *testing.T) {
	patterns := defaultPatterns()
	if len(patterns) == 0 {
		t.Fatal("expected embedded rules")
	}
	for _, pattern := range patterns {
		if parseRiskLevel(pattern.Level) == domain.RiskSafe {
			t.Errorf("rule %q has no usable level %q", pattern.Pattern, pattern.Level)
		}
		if pattern.Message == "" {
			t.Errorf("rule %q has no message", pattern.Pattern)
		}
	}
}
