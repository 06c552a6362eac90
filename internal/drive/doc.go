// Package drive provides a client for interacting with the Google Drive API.
//
// The client wraps the drive/v3 service behind a small typed surface:
//   - Listing the contents of a folder (single bounded page)
//   - Uploading a local file
//   - Downloading file content
//   - Moving files to trash
//   - Creating folders
//
// Calls are rate limited client-side, and every remote failure carries the
// underlying *googleapi.Error so the command boundary can classify it.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := drive.NewClient(ctx, cfg, false)
//	if err != nil {
//	    return err
//	}
//
//	files, err := client.List(ctx, "root")
package drive
