package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	appconfig "github.com/doeshing/shaid/internal/application/config"
	"github.com/doeshing/shaid/internal/domain"
)

const msgConfigurationValid = "Configuration valid"

func newConfigCommand(s *session) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect shaid configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfiguration(cmd, s)
		},
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the effective configuration with the API key masked",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return showConfiguration(cmd, s)
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				container, err := s.get(cmd)
				if err != nil {
					return err
				}
				path, err := container.ConfigLoader.Path()
				if err != nil {
					return err
				}
				writeLine(cmd.OutOrStdout(), path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "validate",
			Short: "Check provider and model compatibility",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := resolveConfiguration(cmd, s)
				if err != nil {
					return err
				}
				if err := appconfig.Validate(cfg); err != nil {
					return &domain.ConfigError{Kind: domain.ErrConfigMalformed, Path: "config", Err: err}
				}
				writeLine(cmd.OutOrStdout(), msgConfigurationValid)
				return nil
			},
		},
	)

	return configCmd
}

// resolveConfiguration applies the command line overrides. An unwritable
// default is reported on stderr and otherwise ignored.
func resolveConfiguration(cmd *cobra.Command, s *session) (domain.Config, error) {
	overrides, err := s.flags.overrides()
	if err != nil {
		return domain.Config{}, err
	}
	container, err := s.get(cmd)
	if err != nil {
		return domain.Config{}, err
	}
	cfg, err := container.ConfigLoader.Resolve(cmd.Context(), overrides)
	if err != nil {
		if !errors.Is(err, domain.ErrConfigUnwritable) {
			return domain.Config{}, err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}
	return cfg, nil
}

func showConfiguration(cmd *cobra.Command, s *session) error {
	cfg, err := resolveConfiguration(cmd, s)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg.Redacted())
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if path, err := s.container.ConfigLoader.Path(); err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", path)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
