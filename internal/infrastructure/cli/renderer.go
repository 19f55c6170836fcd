package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/doeshing/shaid/internal/application/query"
	"github.com/doeshing/shaid/internal/domain"
)

// RenderResponse prints the command as the only stdout line. Warnings and risk
// hints go to stderr so `$(shaid ...)` captures nothing else.
func RenderResponse(stdout, stderr io.Writer, resp domain.QueryResponse) {
	for _, warning := range resp.Warnings {
		writeLine(stderr, warning)
	}
	if resp.Risk.Risky() {
		fmt.Fprintf(stderr, "risk: %s\n", strings.ToUpper(string(resp.Risk.Level)))
		for _, reason := range resp.Risk.Reasons {
			fmt.Fprintf(stderr, " - %s\n", reason)
		}
	}
	if resp.Copied {
		writeLine(stderr, "copied to clipboard")
	}
	writeLine(stdout, resp.Command)
}

// RenderPreparation prints the prompt exactly as it would be sent.
func RenderPreparation(stdout, stderr io.Writer, prep query.Preparation) {
	for _, warning := range prep.Warnings {
		writeLine(stderr, warning)
	}
	if prep.Prompt.Truncated {
		fmt.Fprintf(stderr, "note: prompt truncated to %d bytes\n", prep.Prompt.Len())
	}
	writeLine(stdout, prep.Prompt.String())
}

// RenderHealthReport prints one line per doctor check.
func RenderHealthReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(out, "[%s] %s - %s\n",
			strings.ToUpper(string(check.Status)),
			check.Name,
			check.Details)
	}
}

func writeLine(w io.Writer, text string) {
	fmt.Fprintln(w, strings.TrimRight(text, "\n"))
}
