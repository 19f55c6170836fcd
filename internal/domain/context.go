package domain

import (
	"fmt"
	"strings"
)

// SystemContext holds best-effort facts about the local machine injected into prompts.
// Empty fields were not collected and are omitted when rendered.
type SystemContext struct {
	OS           string
	OSVersion    string
	Arch         string
	Shell        string
	WorkingDir   string
	HomeDir      string
	Listing      []string
	ListingTotal int
}

// Render formats the context with the full listing.
func (c SystemContext) Render() string {
	return c.RenderWithListing(len(c.Listing))
}

// RenderWithListing formats the context in the fixed order OS, arch, shell, cwd, home, listing,
// keeping only the first n listing entries. A negative n drops the listing field.
func (c SystemContext) RenderWithListing(n int) string {
	var lines []string
	if os := c.osLine(); os != "" {
		lines = append(lines, "OS: "+os)
	}
	if c.Arch != "" {
		lines = append(lines, "Architecture: "+c.Arch)
	}
	if c.Shell != "" {
		lines = append(lines, "Shell: "+c.Shell)
	}
	if c.WorkingDir != "" {
		lines = append(lines, "Working directory: "+c.WorkingDir)
	}
	if c.HomeDir != "" {
		lines = append(lines, "Home directory: "+c.HomeDir)
	}
	if n >= 0 && len(c.Listing) > 0 {
		if n > len(c.Listing) {
			n = len(c.Listing)
		}
		lines = append(lines, "Directory listing:")
		for _, entry := range c.Listing[:n] {
			lines = append(lines, "  "+entry)
		}
		if hidden := c.total() - n; hidden > 0 {
			lines = append(lines, fmt.Sprintf("  ... (%d more)", hidden))
		}
	}
	return strings.Join(lines, "\n")
}

// IsEmpty reports whether nothing at all was collected.
func (c SystemContext) IsEmpty() bool {
	return c.OS == "" && c.OSVersion == "" && c.Arch == "" && c.Shell == "" &&
		c.WorkingDir == "" && c.HomeDir == "" && len(c.Listing) == 0
}

func (c SystemContext) osLine() string {
	switch {
	case c.OS != "" && c.OSVersion != "":
		return fmt.Sprintf("%s (%s)", c.OS, c.OSVersion)
	case c.OS != "":
		return c.OS
	default:
		return c.OSVersion
	}
}

func (c SystemContext) total() int {
	if c.ListingTotal < len(c.Listing) {
		return len(c.Listing)
	}
	return c.ListingTotal
}
