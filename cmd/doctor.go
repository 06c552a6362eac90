package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teemow/gdrive/internal/doctor"
	"github.com/teemow/gdrive/internal/google"
	"github.com/teemow/gdrive/internal/outfmt"
)

func newDoctorCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the local setup",
		Long: `Run a series of environment checks: configuration paths, stored
credentials, token refresh and API connectivity. All checks are
reported even when an early one fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outfmt.Parse(outputFormat)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			runner := &doctor.Runner{
				Config: cfg,
				StoredInfo: func() (*google.StoredInfo, error) {
					return google.StoredCredentialsInfo(cfg)
				},
				LoadCredentials: func(ctx context.Context) error {
					_, err := google.LoadCredentials(ctx, cfg, false)
					return err
				},
				SampleList: func(ctx context.Context) (int, error) {
					client, err := newDriveClient(ctx, cfg, false)
					if err != nil {
						return 0, err
					}
					return client.SampleList(ctx)
				},
			}

			checks, runErr := runner.Run(cmd.Context())

			out, err := outfmt.Render(doctor.Records(checks), format, "")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return runErr
		},
	}

	cmd.Flags().StringVar(&outputFormat, "output", "table", "Output format: table|json")

	return cmd
}
