package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teemow/gdrive/internal/locator"
)

func newDownloadCmd() *cobra.Command {
	var fileValue, outputPath string

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download one file from Drive",
		Long: `Download a file's content. Without --output-path the file is written to
the current directory under its remote name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fileID, err := locator.ResolveFile(fileValue)
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

			meta, err := client.Get(cmd.Context(), fileID)
			if err != nil {
				return err
			}

			destination := outputPath
			if destination == "" {
				destination = meta.Name
				if destination == "" {
					destination = fileID
				}
			}
			if dir := filepath.Dir(destination); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create destination directory: %w", err)
				}
			}

			body, err := client.Download(cmd.Context(), fileID)
			if err != nil {
				return err
			}
			defer body.Close()

			out, err := os.Create(destination)
			if err != nil {
				return fmt.Errorf("create %s: %w", destination, err)
			}
			defer out.Close()

			if _, err := io.Copy(out, body); err != nil {
				return fmt.Errorf("write %s: %w", destination, err)
			}

			name := meta.Name
			if name == "" {
				name = fileID
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Downloaded %s to %s\n", name, destination)
			return nil
		},
	}

	cmd.Flags().StringVar(&fileValue, "file", "", "File ID or Drive file link")
	cmd.Flags().StringVar(&outputPath, "output-path", "", "Local destination path (defaults to the remote name)")

	return cmd
}
