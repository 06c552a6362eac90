package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teemow/gdrive/internal/errfmt"
	"github.com/teemow/gdrive/internal/locator"
	"github.com/teemow/gdrive/internal/outfmt"
)

func newMkdirCmd() *cobra.Command {
	var folderValue, outputFormat string

	cmd := &cobra.Command{
		Use:   "mkdir NAME",
		Short: "Create a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if name == "" {
				return errfmt.Inputf("folder name cannot be empty")
			}

			format, err := outfmt.Parse(outputFormat)
			if err != nil {
				return err
			}
			if format == outfmt.CSV {
				return errfmt.Inputf("csv output is not supported for mkdir")
			}

			parentID, err := locator.ResolveFolder(folderValue)
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

			created, err := client.CreateFolder(cmd.Context(), name, parentID)
			if err != nil {
				return err
			}

			record := outfmt.Record{
				{Key: "id", Value: created.ID},
				{Key: "name", Value: created.Name},
				{Key: "mimeType", Value: created.MimeType},
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

	cmd.Flags().StringVar(&folderValue, "folder", "", "Parent folder ID or Drive folder link (defaults to root)")
	cmd.Flags().StringVar(&outputFormat, "output", "table", "Output format: table|json")

	return cmd
}
