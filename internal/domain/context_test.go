package domain_test

import (
	"strings"
	"testing"

	"github.com/doeshing/shaid/internal/domain"
)

func TestSystemContext_RenderOrder(t *testing.T) {
	sc := domain.SystemContext{
		OS:           "linux",
		OSVersion:    "Ubuntu 24.04 LTS",
		Arch:         "amd64",
		Shell:        "zsh",
		WorkingDir:   "/home/me/project",
		HomeDir:      "/home/me",
		Listing:      []string{"README.md", "cmd/"},
		ListingTotal: 14,
	}

	want := strings.Join([]string{
		"OS: linux (Ubuntu 24.04 LTS)",
		"Architecture: amd64",
		"Shell: zsh",
		"Working directory: /home/me/project",
		"Home directory: /home/me",
		"Directory listing:",
		"  README.md",
		"  cmd/",
		"  ... (12 more)",
	}, "\n")

	if got := sc.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestSystemContext_RenderOmitsEmptyFields(t *testing.T) {
	sc := domain.SystemContext{Shell: "bash"}

	if got := sc.Render(); got != "Shell: bash" {
		t.Errorf("Render() = %q", got)
	}
	if !(domain.SystemContext{}).IsEmpty() {
		t.Error("zero context should be empty")
	}
	if (domain.SystemContext{}).Render() != "" {
		t.Error("zero context should render to nothing")
	}
}

func TestSystemContext_RenderWithListing(t *testing.T) {
	sc := domain.SystemContext{
		WorkingDir: "/tmp",
		Listing:    []string{"a", "b", "c"},
	}

	partial := sc.RenderWithListing(1)
	if !strings.Contains(partial, "  a\n  ... (2 more)") {
		t.Errorf("unexpected partial render:\n%s", partial)
	}

	dropped := sc.RenderWithListing(-1)
	if strings.Contains(dropped, "Directory listing") {
		t.Errorf("listing should be dropped:\n%s", dropped)
	}
}
