package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teemow/gdrive/internal/locator"
)

func newTrashCmd() *cobra.Command {
	var fileValue string

	cmd := &cobra.Command{
		Use:   "trash",
		Short: "Move a file to trash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fileID, err := locator.ResolveFile(fileValue)
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

			item, err := client.Trash(cmd.Context(), fileID)
			if err != nil {
				return err
			}

			name := item.Name
			if name == "" {
				name = fileID
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved to trash: %s (%s)\n", name, item.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&fileValue, "file", "", "File ID or Drive file link")

	return cmd
}
