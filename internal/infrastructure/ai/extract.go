package ai

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"mvdan.cc/sh/v3/syntax"

	"github.com/doeshing/shaid/internal/domain"
)

// ExtractCommand isolates a single shell command line from a model reply.
//
// A fenced code block is preferred over prose. Within the chosen text, prompt
// markers, "command:" labels and backticks are stripped, and blank lines, fence
// markers and comments are skipped. Outside a fence, lines ending in ":" are held
// back as likely prose and only used when nothing else is left (`scp f host:`);
// capitalised ones such as "Here is the command:" are never used.
// The first line that parses as a shell statement wins; failing that, the first
// surviving line is returned.
func ExtractCommand(reply string) (string, error) {
	var candidates, labelled []string
	if block, ok := fencedBlock(reply); ok {
		candidates, _ = candidateLines(block, true)
	}
	if len(candidates) == 0 {
		candidates, labelled = candidateLines(reply, false)
	}

	for _, line := range candidates {
		if parsesAsShell(line) {
			return line, nil
		}
	}
	if len(candidates) > 0 {
		return candidates[0], nil
	}
	for _, line := range labelled {
		if !startsUpper(line) && parsesAsShell(line) {
			return line, nil
		}
	}
	return "", domain.ErrNoCommandExtracted
}

// fencedBlock returns the body of the first ``` block, without its language tag.
func fencedBlock(content string) (string, bool) {
	start := strings.Index(content, "```")
	if start == -1 {
		return "", false
	}
	suffix := content[start+3:]
	end := strings.Index(suffix, "```")
	if end == -1 {
		return "", false
	}

	block := suffix[:end]
	if newline := strings.IndexByte(block, '\n'); newline >= 0 {
		tag := strings.TrimSpace(block[:newline])
		if tag == "" || isLanguageTag(tag) {
			block = block[newline+1:]
		}
	}
	return block, true
}

func isLanguageTag(tag string) bool {
	switch strings.ToLower(tag) {
	case "sh", "bash", "shell", "zsh", "fish", "console", "shell-session", "powershell", "ps1", "pwsh", "cmd", "bat":
		return true
	}
	return false
}

// candidateLines splits text into usable lines. Unless fenced, lines ending in ":"
// are returned separately in labelled.
func candidateLines(text string, fenced bool) (lines, labelled []string) {
	for _, raw := range strings.Split(text, "\n") {
		line := cleanLine(raw)
		switch {
		case line == "", strings.HasPrefix(line, "```"), strings.HasPrefix(line, "#"):
		case !fenced && strings.HasSuffix(line, ":"):
			labelled = append(labelled, line)
		default:
			lines = append(lines, line)
		}
	}
	return lines, labelled
}

func cleanLine(line string) string {
	line = strings.TrimSpace(line)
	for _, marker := range []string{"$ ", "> "} {
		if strings.HasPrefix(line, marker) {
			line = strings.TrimSpace(line[len(marker):])
			break
		}
	}
	if strings.HasPrefix(strings.ToLower(line), "command:") {
		line = strings.TrimSpace(line[len("command:"):])
	}
	if strings.HasPrefix(line, "`") && strings.HasSuffix(line, "`") {
		line = strings.TrimSpace(strings.Trim(line, "`"))
	}
	return line
}

func startsUpper(line string) bool {
	r, _ := utf8.DecodeRuneInString(line)
	return unicode.IsUpper(r)
}

func parsesAsShell(line string) bool {
	file, err := syntax.NewParser(syntax.Variant(syntax.LangBash)).Parse(strings.NewReader(line), "")
	if err != nil {
		return false
	}
	return len(file.Stmts) > 0
}
