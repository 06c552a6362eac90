package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/gdrive/internal/drive"
	"github.com/teemow/gdrive/internal/errfmt"
	"github.com/teemow/gdrive/internal/locator"
	"github.com/teemow/gdrive/internal/outfmt"
)

func newLsCmd() *cobra.Command {
	var folderValue, outputFormat, csvPath string

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List files in a folder",
		Long: `List the files directly inside a Drive folder, folders first.
The folder may be given as an ID or a Drive folder link; without --folder
the root folder is listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outfmt.Parse(outputFormat)
			if err != nil {
				return err
			}
			if format == outfmt.CSV && csvPath == "" {
				return errfmt.Inputf("csv output requires --csv-path")
			}

			folderID, err := locator.ResolveFolder(folderValue)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			client, err := newDriveClient(cmd.Context(), cfg, false)
			if err != nil {
				return err
			}

			files, err := client.List(cmd.Context(), folderID)
			if err != nil {
				return err
			}

			out, err := outfmt.Render(listRecords(files), format, csvPath)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&folderValue, "folder", "", "Folder ID or Drive folder link (defaults to root)")
	cmd.Flags().StringVar(&outputFormat, "output", "table", "Output format: table|json|csv")
	cmd.Flags().StringVar(&csvPath, "csv-path", "", "Destination file for csv output")

	return cmd
}

func listRecords(files []*drive.FileInfo) []outfmt.Record {
	records := make([]outfmt.Record, len(files))
	for i, f := range files {
		records[i] = outfmt.Record{
			{Key: "id", Value: f.ID},
			{Key: "name", Value: f.Name},
			{Key: "mimeType", Value: f.MimeType},
			{Key: "size", Value: sizeValue(f)},
			{Key: "modifiedTime", Value: timeValue(f.ModifiedTime)},
			{Key: "trashed", Value: f.Trashed},
		}
	}
	return records
}

// Folders have no size; render nothing rather than a misleading zero.
func sizeValue(f *drive.FileInfo) any {
	if f.IsFolder() {
		return nil
	}
	return f.Size
}

func timeValue(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.RFC3339)
}
