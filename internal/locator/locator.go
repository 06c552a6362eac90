package locator

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/teemow/gdrive/internal/errfmt"
)

// Kind selects which validation rules and URL shapes apply during resolution.
type Kind int

const (
	File Kind = iota
	Folder
)

func (k Kind) String() string {
	if k == Folder {
		return "folder"
	}
	return "file"
}

// RootFolderID is the canonical ID of the implicit top-level folder.
const RootFolderID = "root"

// Drive IDs are opaque tokens; the length and character set here are an
// observed heuristic, not a guarantee from the API. The API remains the
// source of truth for ID validity.
var (
	idPattern         = regexp.MustCompile(`^[A-Za-z0-9_-]{10,}$`)
	folderPathPattern = regexp.MustCompile(`/drive/folders/([A-Za-z0-9_-]{10,})`)
	filePathPattern   = regexp.MustCompile(`/file/d/([A-Za-z0-9_-]{10,})`)
	openPathPattern   = regexp.MustCompile(`/d/([A-Za-z0-9_-]{10,})`)
)

// ResolveFolder resolves a folder ID from a raw ID or a Drive folder link.
// An empty value means "no folder given" and resolves to the root folder.
func ResolveFolder(raw string) (string, error) {
	if raw == "" {
		return RootFolderID, nil
	}
	return resolve(raw, Folder)
}

// ResolveFile resolves a file ID from a raw ID or a Drive file link.
func ResolveFile(raw string) (string, error) {
	return resolve(raw, File)
}

func resolve(raw string, kind Kind) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", errfmt.Inputf("value cannot be empty")
	}

	if idPattern.MatchString(value) {
		return value, nil
	}

	parsed, err := url.Parse(value)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", errfmt.Inputf("expected a Google Drive %s ID or link", kind)
	}

	host := strings.ToLower(parsed.Hostname())
	if host != "google.com" && !strings.HasSuffix(host, ".google.com") {
		return "", errfmt.Inputf("expected a Google Drive %s link", kind)
	}

	path := parsed.Path
	if kind == Folder && strings.Contains(path, "/file/") {
		return "", errfmt.Inputf("expected folder link/ID, but file link was provided")
	}
	if kind == File && strings.Contains(path, "/folders/") {
		return "", errfmt.Inputf("expected file link/ID, but folder link was provided")
	}

	// Most specific shape first: the bare /d/ pattern would otherwise
	// also match /file/d/ links.
	for _, pattern := range []*regexp.Regexp{folderPathPattern, filePathPattern, openPathPattern} {
		if match := pattern.FindStringSubmatch(path); match != nil {
			return match[1], nil
		}
	}

	if id := parsed.Query().Get("id"); idPattern.MatchString(id) {
		return id, nil
	}

	return "", errfmt.Inputf("could not extract %s ID from value: %s", kind, raw)
}
