package errfmt

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/api/googleapi"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error",
			err:  nil,
			want: ExitSuccess,
		},
		{
			name: "input error",
			err:  Inputf("value cannot be empty"),
			want: ExitInput,
		},
		{
			name: "auth error",
			err:  Authf("no local OAuth credentials found"),
			want: ExitAuth,
		},
		{
			name: "api error",
			err:  &googleapi.Error{Code: 404, Message: "File not found"},
			want: ExitAPI,
		},
		{
			name: "wrapped input error",
			err:  fmt.Errorf("resolve folder: %w", Inputf("bad link")),
			want: ExitInput,
		},
		{
			name: "wrapped api error",
			err:  fmt.Errorf("failed to list files: %w", &googleapi.Error{Code: 500}),
			want: ExitAPI,
		},
		{
			name: "unclassified error",
			err:  errors.New("one or more checks failed"),
			want: ExitFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestFormat_Nil(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
}

func TestFormat_Input(t *testing.T) {
	got := Format(Inputf("value cannot be empty"))
	want := "Error: value cannot be empty"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_Auth(t *testing.T) {
	got := Format(Authf("credentials file is corrupt"))
	want := "Auth error: credentials file is corrupt"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_AuthWrapPreservesCause(t *testing.T) {
	cause := errors.New("token expired")
	err := AuthWrap(cause, "failed to refresh credentials")

	if !errors.Is(err, cause) {
		t.Error("expected AuthWrap error to unwrap to its cause")
	}
	if got := Format(err); got != "Auth error: failed to refresh credentials" {
		t.Errorf("Format = %q", got)
	}
}

func TestFormat_APIWithParsedMessage(t *testing.T) {
	err := &googleapi.Error{Code: 404, Message: "File not found"}
	got := Format(err)
	want := "API error (404): File not found"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_APIMessageFromBody(t *testing.T) {
	err := &googleapi.Error{
		Code: 404,
		Body: `{"error":{"message":"File not found"}}`,
	}
	got := Format(err)
	want := "API error (404): File not found"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_APIUnparseableBodyFallsBack(t *testing.T) {
	err := &googleapi.Error{Code: 500, Body: "<html>upstream broke</html>"}
	got := Format(err)

	if got != "API error (500): "+err.Error() {
		t.Errorf("Format = %q", got)
	}
}

func TestFormat_APIUnknownStatus(t *testing.T) {
	err := &googleapi.Error{Body: `{"error":{"message":"backend unreachable"}}`}
	got := Format(err)
	want := "API error (unknown): backend unreachable"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_WrappedAPIError(t *testing.T) {
	err := fmt.Errorf("failed to get file abc: %w", &googleapi.Error{Code: 403, Message: "insufficient permissions"})
	got := Format(err)
	want := "API error (403): insufficient permissions"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_Unclassified(t *testing.T) {
	err := errors.New("one or more checks failed")
	if got := Format(err); got != "one or more checks failed" {
		t.Errorf("Format = %q", got)
	}
}
