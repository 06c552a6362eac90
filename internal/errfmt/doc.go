// Package errfmt declares the failure taxonomy of the CLI and maps it to
// stable process exit codes and user-facing diagnostics.
//
// Three error kinds cover every command failure:
//   - InputError: the user supplied something unusable (exit 2)
//   - AuthError: local credentials are missing or broken (exit 3)
//   - googleapi.Error: the Drive API call itself failed (exit 4)
//
// Anything unclassified exits 1. Each failure is classified exactly once at
// the command boundary (cmd.Execute); nothing propagates past it.
package errfmt
