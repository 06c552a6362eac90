package locator

import (
	"errors"
	"strings"
	"testing"

	"github.com/teemow/gdrive/internal/errfmt"
)

func TestResolveFolder_EmptyDefaultsToRoot(t *testing.T) {
	got, err := ResolveFolder("")
	if err != nil {
		t.Fatalf("ResolveFolder(\"\") returned error: %v", err)
	}
	if got != "root" {
		t.Errorf("ResolveFolder(\"\") = %q, want %q", got, "root")
	}
}

func TestResolveFile_EmptyFails(t *testing.T) {
	_, err := ResolveFile("")
	assertInputError(t, err, "value cannot be empty")
}

func TestResolveFolder_WhitespaceOnlyFails(t *testing.T) {
	_, err := ResolveFolder("   ")
	assertInputError(t, err, "value cannot be empty")
}

func TestResolve_BareIDPassesThrough(t *testing.T) {
	ids := []string{
		"1AbcdefGhIjKlmNop",
		"abcdefghij",
		"a_b-c_d-e_f-123",
		"0123456789ABCDEFabcdef__--",
	}

	for _, id := range ids {
		folderID, err := ResolveFolder(id)
		if err != nil {
			t.Errorf("ResolveFolder(%q) returned error: %v", id, err)
		} else if folderID != id {
			t.Errorf("ResolveFolder(%q) = %q, want unchanged", id, folderID)
		}

		fileID, err := ResolveFile(id)
		if err != nil {
			t.Errorf("ResolveFile(%q) returned error: %v", id, err)
		} else if fileID != id {
			t.Errorf("ResolveFile(%q) = %q, want unchanged", id, fileID)
		}
	}
}

func TestResolve_BareIDTooShortIsNotAnID(t *testing.T) {
	// Nine characters: below the ID length threshold and not a URL either.
	_, err := ResolveFile("abc123def")
	assertInputError(t, err, "expected a Google Drive file ID or link")
}

func TestResolve_URLShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind Kind
		want string
	}{
		{
			name: "folder link",
			raw:  "https://drive.google.com/drive/folders/1AbcdefGhIjKlmNop",
			kind: Folder,
			want: "1AbcdefGhIjKlmNop",
		},
		{
			name: "folder link with query",
			raw:  "https://drive.google.com/drive/folders/1AbcdefGhIjKlmNop?usp=sharing",
			kind: Folder,
			want: "1AbcdefGhIjKlmNop",
		},
		{
			name: "file view link",
			raw:  "https://drive.google.com/file/d/1AbcdefGhIjKlmNop/view",
			kind: File,
			want: "1AbcdefGhIjKlmNop",
		},
		{
			name: "docs open-by-id link",
			raw:  "https://docs.google.com/document/d/1AbcdefGhIjKlmNop/edit",
			kind: File,
			want: "1AbcdefGhIjKlmNop",
		},
		{
			name: "uc export link with id query",
			raw:  "https://drive.google.com/uc?export=download&id=1AbcdefGhIjKlmNop",
			kind: File,
			want: "1AbcdefGhIjKlmNop",
		},
		{
			name: "open link with id query",
			raw:  "https://drive.google.com/open?id=1AbcdefGhIjKlmNop",
			kind: Folder,
			want: "1AbcdefGhIjKlmNop",
		},
		{
			name: "http scheme accepted",
			raw:  "http://drive.google.com/drive/folders/1AbcdefGhIjKlmNop",
			kind: Folder,
			want: "1AbcdefGhIjKlmNop",
		},
		{
			name: "host match is case-insensitive",
			raw:  "https://Drive.Google.COM/drive/folders/1AbcdefGhIjKlmNop",
			kind: Folder,
			want: "1AbcdefGhIjKlmNop",
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  "  https://drive.google.com/file/d/1AbcdefGhIjKlmNop/view  ",
			kind: File,
			want: "1AbcdefGhIjKlmNop",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolve(tt.raw, tt.kind)
			if err != nil {
				t.Fatalf("resolve(%q, %v) returned error: %v", tt.raw, tt.kind, err)
			}
			if got != tt.want {
				t.Errorf("resolve(%q, %v) = %q, want %q", tt.raw, tt.kind, got, tt.want)
			}
		})
	}
}

func TestResolve_CrossKindGuard(t *testing.T) {
	folderURL := "https://drive.google.com/drive/folders/1AbcdefGhIjKlmNop"
	fileURL := "https://drive.google.com/file/d/1AbcdefGhIjKlmNop/view"

	if _, err := ResolveFolder(folderURL); err != nil {
		t.Errorf("folder URL as folder should resolve, got %v", err)
	}
	if _, err := ResolveFile(fileURL); err != nil {
		t.Errorf("file URL as file should resolve, got %v", err)
	}

	_, err := ResolveFolder(fileURL)
	assertInputError(t, err, "file link was provided")

	_, err = ResolveFile(folderURL)
	assertInputError(t, err, "folder link was provided")
}

func TestResolve_InvalidInputs(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		kind    Kind
		wantMsg string
	}{
		{
			name:    "unrecognized host",
			raw:     "https://example.com/drive/folders/1AbcdefGhIjKlmNop",
			kind:    Folder,
			wantMsg: "expected a Google Drive folder link",
		},
		{
			name:    "host suffix must match on a label boundary",
			raw:     "https://evilgoogle.com/drive/folders/1AbcdefGhIjKlmNop",
			kind:    Folder,
			wantMsg: "expected a Google Drive folder link",
		},
		{
			name:    "unsupported scheme",
			raw:     "ftp://drive.google.com/drive/folders/1AbcdefGhIjKlmNop",
			kind:    Folder,
			wantMsg: "expected a Google Drive folder ID or link",
		},
		{
			name:    "not an id and not a url",
			raw:     "hello world",
			kind:    File,
			wantMsg: "expected a Google Drive file ID or link",
		},
		{
			name:    "google url without extractable id",
			raw:     "https://drive.google.com/drive/my-drive",
			kind:    Folder,
			wantMsg: "could not extract folder ID from value: https://drive.google.com/drive/my-drive",
		},
		{
			name:    "id query parameter too short",
			raw:     "https://drive.google.com/open?id=short",
			kind:    File,
			wantMsg: "could not extract file ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolve(tt.raw, tt.kind)
			assertInputError(t, err, tt.wantMsg)
		})
	}
}

func TestResolve_IsDeterministic(t *testing.T) {
	raw := "https://drive.google.com/drive/folders/1AbcdefGhIjKlmNop"

	first, err := ResolveFolder(raw)
	if err != nil {
		t.Fatalf("first resolve failed: %v", err)
	}
	second, err := ResolveFolder(first)
	if err != nil {
		t.Fatalf("second resolve failed: %v", err)
	}
	if first != second {
		t.Errorf("resolving a resolved ID changed it: %q != %q", first, second)
	}
}

func assertInputError(t *testing.T, err error, contains string) {
	t.Helper()

	if err == nil {
		t.Fatal("expected an error, got nil")
	}

	var inputErr *errfmt.InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected errfmt.InputError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), contains) {
		t.Errorf("error %q does not contain %q", err.Error(), contains)
	}
}
