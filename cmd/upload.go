package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teemow/gdrive/internal/errfmt"
	"github.com/teemow/gdrive/internal/locator"
	"github.com/teemow/gdrive/internal/outfmt"
)

func newUploadCmd() *cobra.Command {
	var folderValue, outputFormat string

	cmd := &cobra.Command{
		Use:   "upload LOCAL_PATH",
		Short: "Upload one local file to Drive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			localPath := args[0]

			format, err := outfmt.Parse(outputFormat)
			if err != nil {
				return err
			}
			if format == outfmt.CSV {
				return errfmt.Inputf("csv output is not supported for upload")
			}

			info, err := os.Stat(localPath)
			if err != nil {
				return errfmt.Inputf("local file not found: %s", localPath)
			}
			if info.IsDir() {
				return errfmt.Inputf("%s is a directory; upload expects a file", localPath)
			}

			folderID, err := locator.ResolveFolder(folderValue)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			client, err := newDriveClient(cmd.Context(), cfg, true)
			if err != nil {
				return err
			}

			file, err := os.Open(localPath)
			if err != nil {
				return errfmt.Inputf("failed to open %s: %v", localPath, err)
			}
			defer file.Close()

			created, err := client.Upload(cmd.Context(), filepath.Base(localPath), file, folderID)
			if err != nil {
				return err
			}

			record := outfmt.Record{
				{Key: "id", Value: created.ID},
				{Key: "name", Value: created.Name},
				{Key: "mimeType", Value: created.MimeType},
				{Key: "size", Value: created.Size},
				{Key: "webViewLink", Value: created.WebViewLink},
			}
			out, err := outfmt.Render([]outfmt.Record{record}, format, "")
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&folderValue, "folder", "", "Target folder ID or Drive folder link (defaults to root)")
	cmd.Flags().StringVar(&outputFormat, "output", "table", "Output format: table|json")

	return cmd
}
