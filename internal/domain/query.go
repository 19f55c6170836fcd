package domain

// QueryRequest captures user intent originating from the CLI.
type QueryRequest struct {
	Prompt          string
	Overrides       Overrides
	CopyToClipboard bool
}

// QueryResponse is the canonical response propagated back to the CLI.
type QueryResponse struct {
	Command string
	Risk    RiskAssessment
	Prompt  Prompt
	Config  Config
	Context SystemContext
	Copied  bool
	// Warnings are non-fatal problems the user should see on stderr.
	Warnings []string
}
