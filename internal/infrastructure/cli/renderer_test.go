package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doeshing/shaid/internal/application/query"
	"github.com/doeshing/shaid/internal/domain"
)

func TestRenderResponseKeepsStdoutToOneLine(t *testing.T) {
	var stdout, stderr bytes.Buffer
	RenderResponse(&stdout, &stderr, domain.QueryResponse{
		Command:  "sudo rm -rf /etc",
		Risk:     domain.RiskAssessment{Level: domain.RiskHigh, Reasons: []string{"Recursive delete of a system path"}},
		Warnings: []string{"warning: default configuration could not be written"},
		Copied:   true,
	})

	assert.Equal(t, "sudo rm -rf /etc\n", stdout.String())
	assert.Contains(t, stderr.String(), "risk: HIGH")
	assert.Contains(t, stderr.String(), " - Recursive delete of a system path")
	assert.Contains(t, stderr.String(), "warning: default configuration")
	assert.Contains(t, stderr.String(), "copied to clipboard")
}

func TestRenderResponseQuietForSafeCommands(t *testing.T) {
	var stdout, stderr bytes.Buffer
	RenderResponse(&stdout, &stderr, domain.QueryResponse{
		Command: "ls -la",
		Risk:    domain.RiskAssessment{Level: domain.RiskLow, Reasons: []string{"Runs with elevated privileges"}},
	})

	assert.Equal(t, "ls -la\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRenderPreparationNotesTruncation(t *testing.T) {
	var stdout, stderr bytes.Buffer
	RenderPreparation(&stdout, &stderr, query.Preparation{
		Prompt: domain.Prompt{Instruction: "Reply with one command.", Request: "list files", Truncated: true},
	})

	assert.Contains(t, stdout.String(), "Request: list files")
	assert.Contains(t, stderr.String(), "prompt truncated")
}
