package filesystem

import (
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home := filepath.Join(string(filepath.Separator), "home", "me")
	abs := filepath.Join(string(filepath.Separator), "etc", "shaid.yaml")

	tests := []struct {
		path string
		want string
	}{
		{path: "~/cfg/shaid.yaml", want: filepath.Join(home, "cfg", "shaid.yaml")},
		{path: abs, want: abs},
		{path: "./rel/../config.yaml", want: "config.yaml"},
	}

	for _, tt := range tests {
		if got := ExpandHome(tt.path, home); got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestUserHomeDirNeverEmpty(t *testing.T) {
	if UserHomeDir() == "" {
		t.Fatal("expected a non-empty home directory")
	}
}
