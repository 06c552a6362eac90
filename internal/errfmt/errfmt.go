package errfmt

import (
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

// Exit codes are part of the external contract; scripts branch on them.
// Changing any of these values is a breaking change.
const (
	ExitSuccess = 0 // Command completed
	ExitFailure = 1 // Generic failure (doctor aggregate, unclassified errors)
	ExitInput   = 2 // Invalid user input (bad locator, missing value)
	ExitAuth    = 3 // Credential problem (missing, corrupt, refresh failed)
	ExitAPI     = 4 // Google API call failed
)

// InputError reports invalid user input: malformed locators, missing values,
// unusable local paths. It is never retried; the user corrects the input.
type InputError struct {
	msg string
}

func (e *InputError) Error() string { return e.msg }

// Inputf creates an InputError with a formatted message.
func Inputf(format string, args ...any) error {
	return &InputError{msg: fmt.Sprintf(format, args...)}
}

// AuthError reports a local credential problem. It is never retried; the user
// must re-run the login flow.
type AuthError struct {
	msg   string
	cause error
}

func (e *AuthError) Error() string { return e.msg }

func (e *AuthError) Unwrap() error { return e.cause }

// Authf creates an AuthError with a formatted message.
func Authf(format string, args ...any) error {
	return &AuthError{msg: fmt.Sprintf(format, args...)}
}

// AuthWrap creates an AuthError that preserves the underlying cause for
// errors.Is/As while presenting the formatted message.
func AuthWrap(cause error, format string, args ...any) error {
	return &AuthError{msg: fmt.Sprintf(format, args...), cause: cause}
}

// ExitCode maps an error to its process exit code. Classification precedence
// (input before auth before API) is enforced by command control flow: locator
// resolution happens before the client is built, which happens before any
// remote call, so at most one of these error kinds reaches the boundary.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return ExitInput
	}

	var authErr *AuthError
	if errors.As(err, &authErr) {
		return ExitAuth
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return ExitAPI
	}

	return ExitFailure
}

// Format renders the user-facing diagnostic for an error. The prefixes and
// message shapes are stable alongside the exit codes.
func Format(err error) string {
	if err == nil {
		return ""
	}

	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return fmt.Sprintf("Error: %s", inputErr.msg)
	}

	var authErr *AuthError
	if errors.As(err, &authErr) {
		return fmt.Sprintf("Auth error: %s", authErr.msg)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("API error (%s): %s", apiStatus(apiErr), apiMessage(apiErr))
	}

	return err.Error()
}

func apiStatus(apiErr *googleapi.Error) string {
	if apiErr.Code == 0 {
		return "unknown"
	}
	return fmt.Sprintf("%d", apiErr.Code)
}

// apiMessage extracts the most useful message from a Google API error: the
// SDK-parsed message when present, otherwise a best-effort parse of the raw
// response body for a nested error.message, otherwise the error's own string.
func apiMessage(apiErr *googleapi.Error) string {
	if apiErr.Message != "" {
		return apiErr.Message
	}

	if msg := messageFromBody(apiErr.Body); msg != "" {
		return msg
	}

	return apiErr.Error()
}

func messageFromBody(body string) string {
	if body == "" {
		return ""
	}

	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return ""
	}

	return payload.Error.Message
}
