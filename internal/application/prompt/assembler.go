// Package prompt builds the text sent to a provider from the user's request and the
// collected system context, keeping the result within domain.MaxPromptBytes.
package prompt

import (
	"strings"
	"unicode/utf8"

	"github.com/doeshing/shaid/internal/domain"
)

// Instruction is the fixed system-role preamble. Facts about the machine live in
// the context block only, so dropping that block removes all of them.
const Instruction = `You are shaid, a shell command generator.
Translate the user's request into exactly one shell command for the shell and operating system described in the system context.
When no context is given, assume a POSIX shell.
Reply with the command only, on a single line.
Do not add explanations, comments, markdown formatting or code fences.`

// Assemble combines an instruction preamble, the rendered context and the normalized
// user text. It is pure: the same inputs always yield the same prompt.
func Assemble(userText string, sc domain.SystemContext) domain.Prompt {
	return AssembleWithLimit(userText, sc, domain.MaxPromptBytes)
}

// AssembleWithLimit is Assemble with an explicit byte bound. Context is sacrificed
// before the user's request: listing entries go first, then the listing, then the
// whole context block. The request itself is cut only as a last resort.
func AssembleWithLimit(userText string, sc domain.SystemContext, limit int) domain.Prompt {
	p := domain.Prompt{
		Instruction: Instruction,
		Context:     sc.Render(),
		Request:     Normalize(userText),
	}
	if p.Len() <= limit {
		return p
	}
	p.Truncated = true

	for n := len(sc.Listing) - 1; n >= 0; n-- {
		p.Context = sc.RenderWithListing(n)
		if p.Len() <= limit {
			return p
		}
	}

	p.Context = sc.RenderWithListing(-1)
	if p.Len() <= limit {
		return p
	}

	p.Context = ""
	if p.Len() <= limit {
		return p
	}

	overhead := p.Len() - len(p.Request)
	p.Request = truncateUTF8(p.Request, limit-overhead)
	return p
}

// Normalize collapses whitespace runs to a single space and trims both ends.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// truncateUTF8 cuts s to at most max bytes without splitting a rune.
func truncateUTF8(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
