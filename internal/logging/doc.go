// Package logging configures structured logging for the CLI.
//
// All diagnostics use the standard library's slog package with a text
// handler on stderr, keeping stdout reserved for command results. The
// attribute helpers keep key names consistent across the codebase.
package logging
