package cli

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/shaid/internal/app"
	"github.com/doeshing/shaid/internal/domain"
	"github.com/doeshing/shaid/internal/ports"
)

// Options holds CLI-level configuration.
type Options struct {
	// Verbose forces debug logging, typically from SHAID_DEBUG.
	Verbose bool
	Stdout  io.Writer
	Stderr  io.Writer
	// Clipboard defaults to the system clipboard.
	Clipboard ports.Clipboard
	// Build defaults to app.BuildContainer.
	Build func(context.Context, app.Settings) (*app.Container, error)
}

// flags are shared by every command that resolves configuration.
type flags struct {
	provider   string
	model      string
	apiKey     string
	baseURL    string
	configPath string
	verbose    bool
	timeout    time.Duration
	copy       bool
}

func (f *flags) overrides() (domain.Overrides, error) {
	o := domain.Overrides{
		Model:   strings.TrimSpace(f.model),
		APIKey:  strings.TrimSpace(f.apiKey),
		BaseURL: strings.TrimSpace(f.baseURL),
	}
	if f.provider != "" {
		kind, err := domain.ParseProviderKind(f.provider)
		if err != nil {
			return domain.Overrides{}, &domain.ConfigError{Kind: domain.ErrConfigMalformed, Path: "--provider", Err: err}
		}
		o.Provider = kind
	}
	return o, nil
}

// session lazily builds the container once flags are parsed.
type session struct {
	opts      Options
	flags     flags
	container *app.Container
}

func (s *session) get(cmd *cobra.Command) (*app.Container, error) {
	if s.container != nil {
		return s.container, nil
	}
	container, err := s.opts.Build(cmd.Context(), app.Settings{
		ConfigPath: s.flags.configPath,
		Verbose:    s.opts.Verbose || s.flags.verbose,
	})
	if err != nil {
		return nil, err
	}
	container.QueryService.Clipboard = s.opts.Clipboard
	for _, warning := range container.Warnings {
		writeLine(cmd.ErrOrStderr(), warning)
	}
	s.container = container
	return container, nil
}

func (s *session) close() {
	if s.container != nil && s.container.Logger != nil {
		_ = s.container.Logger.Sync()
	}
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(opts Options) *cobra.Command {
	root, _ := newRoot(opts)
	return root
}

func newRoot(opts Options) (*cobra.Command, *session) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Clipboard == nil {
		opts.Clipboard = NewClipboard()
	}
	if opts.Build == nil {
		opts.Build = app.BuildContainer
	}
	s := &session{opts: opts}

	root := &cobra.Command{
		Use:   "shaid [description...]",
		Short: "shaid - natural language to a shell command",
		Long: "shaid turns a plain-language description into a single shell command for your\n" +
			"shell and OS. Only the command is printed on stdout; nothing is executed.\n\n" +
			"A description whose first word names a subcommand (config, context, doctor,\n" +
			"prompt, query, version) is taken as that subcommand. Use \"shaid query ...\"\n" +
			"to send such a description to the provider, e.g.\n" +
			"  shaid query config nginx to listen on 8080",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runQuery(cmd, s, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&s.flags.provider, "provider", "P", "", "Provider for this run (openai|claude|gemini|custom)")
	pf.StringVarP(&s.flags.model, "model", "m", "", "Model for this run (default from config)")
	pf.StringVar(&s.flags.apiKey, "api-key", "", "API key for this run")
	pf.StringVar(&s.flags.baseURL, "base-url", "", "Endpoint for custom providers")
	pf.StringVar(&s.flags.configPath, "config", "", "Config file path (default $SHAID_CONFIG or the user config dir)")
	pf.BoolVarP(&s.flags.verbose, "verbose", "v", false, "Debug logging on stderr")
	bindQueryFlags(root, &s.flags)

	root.AddCommand(
		newQueryCommand(s),
		newPromptCommand(s),
		newContextCommand(s),
		newConfigCommand(s),
		newDoctorCommand(s),
		newVersionCommand(),
	)
	return root, s
}

func bindQueryFlags(cmd *cobra.Command, f *flags) {
	cmd.Flags().DurationVar(&f.timeout, "timeout", domain.DefaultHTTPClientTimeout, "Give up on the provider after this long")
	cmd.Flags().BoolVarP(&f.copy, "copy", "c", false, "Copy the generated command to the clipboard")
}

func newQueryCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query [description...]",
		Short: "Generate a command from natural language",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, s, args)
		},
	}
	bindQueryFlags(cmd, &s.flags)
	return cmd
}

func runQuery(cmd *cobra.Command, s *session, args []string) error {
	overrides, err := s.flags.overrides()
	if err != nil {
		return err
	}
	container, err := s.get(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if s.flags.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.flags.timeout)
		defer cancel()
	}

	spinner := NewSpinner(cmd.ErrOrStderr())
	spinner.Start()
	resp, err := container.QueryService.Run(ctx, domain.QueryRequest{
		Prompt:          strings.Join(args, " "),
		Overrides:       overrides,
		CopyToClipboard: s.flags.copy,
	})
	spinner.Stop()
	if err != nil {
		return err
	}
	RenderResponse(cmd.OutOrStdout(), cmd.ErrOrStderr(), resp)
	return nil
}

func newPromptCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt [description...]",
		Short: "Print the prompt that would be sent, without contacting a provider",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := s.flags.overrides()
			if err != nil {
				return err
			}
			container, err := s.get(cmd)
			if err != nil {
				return err
			}
			prep, err := container.QueryService.Prepare(cmd.Context(), domain.QueryRequest{
				Prompt:    strings.Join(args, " "),
				Overrides: overrides,
			})
			if err != nil {
				return err
			}
			RenderPreparation(cmd.OutOrStdout(), cmd.ErrOrStderr(), prep)
			return nil
		},
	}
}

func newContextCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "context",
		Short: "Print the system context injected into prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := s.get(cmd)
			if err != nil {
				return err
			}
			sc := container.ContextCollector.Collect(cmd.Context())
			if sc.IsEmpty() {
				writeLine(cmd.ErrOrStderr(), "no system context could be collected")
				return nil
			}
			writeLine(cmd.OutOrStdout(), sc.Render())
			return nil
		},
	}
}
