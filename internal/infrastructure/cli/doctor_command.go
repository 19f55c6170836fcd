package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func newDoctorCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose configuration, provider and environment setup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := s.get(cmd)
			if err != nil {
				return err
			}

			report, err := container.DoctorService.Run(cmd.Context())
			// Display report even if there were errors
			RenderHealthReport(cmd.OutOrStdout(), report)
			if err != nil {
				return err
			}
			if report.Failed() {
				return errors.New("diagnostics found problems")
			}
			return nil
		},
	}
}
