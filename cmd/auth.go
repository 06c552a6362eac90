package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teemow/gdrive/internal/errfmt"
	"github.com/teemow/gdrive/internal/google"
	"github.com/teemow/gdrive/internal/outfmt"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage local OAuth credentials",
	}

	cmd.AddCommand(newAuthLoginCmd())
	cmd.AddCommand(newAuthWhoamiCmd())

	return cmd
}

func newAuthLoginCmd() *cobra.Command {
	var clientSecretPath string
	var readonly, noLaunchBrowser bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Run the OAuth flow and store credentials locally",
		Long: `Run the installed-app OAuth flow against Google and persist the
resulting token next to the client configuration. A client secret JSON
file downloaded from the Google Cloud console is required.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if clientSecretPath == "" {
				return errfmt.Inputf("--client-secret is required")
			}
			if _, err := os.Stat(clientSecretPath); err != nil {
				return errfmt.Inputf("client secret file not found: %s", clientSecretPath)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.EnsureDir(); err != nil {
				return err
			}

			path, err := google.Login(cmd.Context(), cfg, google.LoginOptions{
				ClientSecretPath: clientSecretPath,
				Readonly:         readonly,
				LaunchBrowser:    !noLaunchBrowser,
				In:               cmd.InOrStdin(),
				Out:              cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved credentials to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&clientSecretPath, "client-secret", "", "Path to the OAuth client secret JSON file")
	cmd.Flags().BoolVar(&readonly, "readonly", false, "Request the read-only Drive scope only")
	cmd.Flags().BoolVar(&noLaunchBrowser, "no-launch-browser", false, "Print the authorization URL instead of opening a browser")

	return cmd
}

func newAuthWhoamiCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outfmt.Parse(outputFormat)
			if err != nil {
				return err
			}
			if format == outfmt.CSV {
				return errfmt.Inputf("csv output is not supported for whoami")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			info, err := google.StoredCredentialsInfo(cfg)
			if err != nil {
				return err
			}
			if info == nil {
				return errfmt.Inputf("no local OAuth credentials found; run `gdrive auth login --client-secret <path>` first")
			}

			record := outfmt.Record{
				{Key: "path", Value: info.Path},
				{Key: "client_id", Value: info.ClientID},
				{Key: "scopes", Value: strings.Join(info.Scopes, ",")},
				{Key: "has_refresh_token", Value: info.HasRefreshToken},
			}
			out, err := outfmt.Render([]outfmt.Record{record}, format, "")
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&outputFormat, "output", "table", "Output format: table|json")

	return cmd
}
