// Package cmd implements the command-line interface for gdrive.
//
// This package provides the following commands:
//   - ls: List files in a Drive folder
//   - upload: Upload a local file to Drive
//   - download: Download a file from Drive
//   - trash: Move a file to trash
//   - mkdir: Create a folder
//   - auth: Log in and inspect stored credentials
//   - doctor: Run environment and connectivity diagnostics
//   - version: Display version information
//
// Exit codes are a stable contract: 0 success, 1 generic failure, 2 invalid
// input, 3 authentication failure, 4 Drive API failure.
package cmd
