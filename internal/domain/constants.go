package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Timeout and duration constants
const (
	// DefaultProbeTimeout bounds each external command run while collecting context
	DefaultProbeTimeout = 2 * time.Second
	// DefaultHTTPClientTimeout is the timeout for HTTP client requests
	DefaultHTTPClientTimeout = 60 * time.Second
)

// Limit constants
const (
	// MaxPromptBytes is the upper bound on the rendered prompt
	MaxPromptBytes = 8000
	// DefaultListingLimit caps the directory listing in the system context
	DefaultListingLimit = 50
)

// Model configuration constants
const (
	// DefaultMaxTokens is the default maximum number of tokens
	DefaultMaxTokens = 1024
	// DefaultTemperature keeps generations deterministic
	DefaultTemperature = 0.0
)

// Environment variables read by the binary itself
const (
	EnvConfigPath = "SHAID_CONFIG"
	EnvDebug      = "SHAID_DEBUG"
)
