package domain

import "strings"

// Prompt is the text sent to a provider: instruction, context block and user request, in that order.
type Prompt struct {
	Instruction string
	Context     string
	Request     string
	Truncated   bool
}

// UserMessage joins the context block and the request, which providers send as the user turn.
func (p Prompt) UserMessage() string {
	if p.Context == "" {
		return "Request: " + p.Request
	}
	return "System context:\n" + p.Context + "\n\nRequest: " + p.Request
}

// String renders the prompt as the single text blob whose length is bounded.
func (p Prompt) String() string {
	var b strings.Builder
	b.WriteString(p.Instruction)
	b.WriteString("\n\n")
	b.WriteString(p.UserMessage())
	return b.String()
}

// Len returns the rendered length in bytes.
func (p Prompt) Len() int {
	return len(p.String())
}
