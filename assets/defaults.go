// Package assets embeds files shipped inside the shaid binary.
package assets

import (
	_ "embed"
)

// DefaultGuardrailYAML contains the built-in guardrail rules.
//
//go:embed defaults/guardrail.yaml
var DefaultGuardrailYAML []byte
