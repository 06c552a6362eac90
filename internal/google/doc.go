// Package google manages OAuth2 credentials for the Drive API.
//
// Credentials live in a single JSON file under the config directory: client
// identity, granted scopes, and the OAuth token. The package owns that file
// exclusively; every failure loading or refreshing it surfaces as an
// errfmt.AuthError so the command boundary maps it to the authentication
// exit code.
package google
