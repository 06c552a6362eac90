package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/teemow/gdrive/internal/config"
	"github.com/teemow/gdrive/internal/drive"
	"github.com/teemow/gdrive/internal/errfmt"
	"github.com/teemow/gdrive/internal/logging"
)

// version will be set by main
var version = "dev"

// SetVersion sets the version reported by the root and version commands
func SetVersion(v string) {
	version = v
}

// Injection points for tests; production wiring stays in one place.
var (
	loadConfig     = config.Load
	newDriveClient = func(ctx context.Context, cfg config.Config, write bool) (*drive.Client, error) {
		return drive.NewClient(ctx, cfg, write)
	}
)

// Execute runs the CLI and returns the process exit code. Every failure is
// classified exactly once here: diagnostic to stderr, mapped code to the
// caller. Stdout carries only command results.
func Execute() int {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		// The raw error chain is only visible with --verbose; the formatted
		// diagnostic below is the stable user-facing surface.
		slog.Debug("command failed", logging.Err(err))
		fmt.Fprintln(os.Stderr, errfmt.Format(err))
		return errfmt.ExitCode(err)
	}
	return errfmt.ExitSuccess
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "gdrive",
		Short: "Command-line client for Google Drive",
		Long: `gdrive is a command-line client for Google Drive: list, upload, download,
and trash files, create folders, and manage OAuth credentials.

File and folder arguments accept either a bare Drive ID or a Drive link
(folder links, file links, open-by-id links).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// Local .env files may carry GDRIVE_* overrides.
			_ = godotenv.Load()
			logging.Setup(cmd.ErrOrStderr(), verbose)
		},
	}

	root.SetVersionTemplate(`{{printf "gdrive version %s\n" .Version}}`)
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	root.AddCommand(newAuthCmd())
	root.AddCommand(newLsCmd())
	root.AddCommand(newUploadCmd())
	root.AddCommand(newDownloadCmd())
	root.AddCommand(newTrashCmd())
	root.AddCommand(newMkdirCmd())
	root.AddCommand(newDoctorCmd())
	root.AddCommand(newVersionCmd())

	return root
}
