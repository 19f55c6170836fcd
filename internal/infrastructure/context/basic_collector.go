package contextcollector

import (
	"bufio"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/doeshing/shaid/internal/domain"
	"github.com/doeshing/shaid/internal/ports"
)

// BasicCollector implements ContextCollector with runtime facts, a few OS commands and
// a capped directory listing. Every step is isolated: a failure leaves its field empty.
type BasicCollector struct {
	listingLimit int
	goos         string
	goarch       string

	getwd       func() (string, error)
	userHomeDir func() (string, error)
	readDir     func(string) ([]os.DirEntry, error)
	getenv      func(string) string
	readFile    func(string) ([]byte, error)
	runCommand  func(ctx context.Context, name string, args ...string) (string, error)
}

// NewBasicCollector builds a collector backed by the real process environment.
func NewBasicCollector() *BasicCollector {
	return &BasicCollector{
		listingLimit: domain.DefaultListingLimit,
		goos:         runtime.GOOS,
		goarch:       runtime.GOARCH,
		getwd:        os.Getwd,
		userHomeDir:  os.UserHomeDir,
		readDir:      os.ReadDir,
		getenv:       os.Getenv,
		readFile:     os.ReadFile,
		runCommand:   runCmd,
	}
}

// Collect gathers context data. It never fails.
func (c *BasicCollector) Collect(ctx context.Context) domain.SystemContext {
	sc := domain.SystemContext{
		OS:        c.goos,
		Arch:      c.goarch,
		OSVersion: c.osVersion(ctx),
		Shell:     c.detectShell(),
	}

	if home, err := c.userHomeDir(); err == nil {
		sc.HomeDir = home
	}

	wd, err := c.getwd()
	if err != nil {
		return sc
	}
	sc.WorkingDir = wd
	sc.Listing, sc.ListingTotal = c.listFiles(wd)
	return sc
}

func (c *BasicCollector) osVersion(ctx context.Context) string {
	switch c.goos {
	case "linux":
		if pretty := c.osReleasePrettyName(); pretty != "" {
			return pretty
		}
		return c.commandOutput(ctx, "uname", "-r")
	case "darwin":
		if version := c.commandOutput(ctx, "sw_vers", "-productVersion"); version != "" {
			return "macOS " + version
		}
		return ""
	case "windows":
		return c.commandOutput(ctx, "cmd", "/C", "ver")
	default:
		return c.commandOutput(ctx, "uname", "-r")
	}
}

func (c *BasicCollector) osReleasePrettyName() string {
	raw, err := c.readFile("/etc/os-release")
	if err != nil {
		return ""
	}
	scanner := bufio.NewScanner(strings.NewReader(string(raw)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		value, ok := strings.CutPrefix(line, "PRETTY_NAME=")
		if !ok {
			continue
		}
		return strings.Trim(value, `"'`)
	}
	return ""
}

func (c *BasicCollector) commandOutput(ctx context.Context, name string, args ...string) string {
	out, err := c.runCommand(ctx, name, args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

func (c *BasicCollector) detectShell() string {
	if shell := c.getenv("SHELL"); shell != "" {
		return baseName(shell)
	}
	if c.goos == "windows" {
		if c.getenv("PSModulePath") != "" {
			return "powershell"
		}
		if comspec := c.getenv("ComSpec"); comspec != "" {
			return strings.TrimSuffix(strings.ToLower(baseName(comspec)), ".exe")
		}
	}
	return ""
}

// listFiles returns the first listingLimit visible entries, sorted, directories
// suffixed with "/", and the number of visible entries seen.
func (c *BasicCollector) listFiles(dir string) ([]string, int) {
	entries, err := c.readDir(dir)
	if err != nil {
		return nil, 0
	}
	var names []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		name := entry.Name()
		if entry.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	sort.Strings(names)
	total := len(names)
	if c.listingLimit >= 0 && len(names) > c.listingLimit {
		names = names[:c.listingLimit]
	}
	return names, total
}

// baseName handles both separators so Windows paths resolve on any host.
func baseName(path string) string {
	path = strings.TrimRight(path, `/\`)
	if idx := strings.LastIndexAny(path, `/\`); idx >= 0 {
		return path[idx+1:]
	}
	return filepath.Base(path)
}

func runCmd(ctx context.Context, name string, args ...string) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, domain.DefaultProbeTimeout)
	defer cancel()
	cmd := exec.CommandContext(cctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

var _ ports.ContextCollector = (*BasicCollector)(nil)
