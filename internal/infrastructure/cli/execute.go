package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/doeshing/shaid/internal/domain"
)

// Execute runs the command line and returns the process exit status.
// Errors are reported on stderr; stdout only ever carries command output.
func Execute(ctx context.Context, args []string, opts Options) int {
	root, s := newRoot(opts)
	defer s.close()

	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	category := domain.Classify(err)
	reportError(root.ErrOrStderr(), category, err)
	return category.ExitCode()
}

func reportError(w io.Writer, category domain.ErrorCategory, err error) {
	if category == domain.CategoryUnknown {
		fmt.Fprintf(w, "shaid: %v\n", err)
		return
	}
	fmt.Fprintf(w, "shaid: %s\n  %v\n", category.Summary(), err)
	if hint := hintFor(category); hint != "" {
		fmt.Fprintf(w, "  %s\n", hint)
	}
}

func hintFor(category domain.ErrorCategory) string {
	switch category {
	case domain.CategoryConfig:
		return "run `shaid config path` to locate the file, or `shaid doctor`"
	case domain.CategoryAuth:
		return "set api_key in the config file, pass --api-key, or export the provider's key variable"
	case domain.CategoryNetwork:
		return "check connectivity and the endpoint, or raise --timeout"
	case domain.CategoryNoCommand:
		return "try rephrasing the request"
	default:
		return ""
	}
}
