package outfmt

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/teemow/gdrive/internal/errfmt"
)

func sampleRecords() []Record {
	return []Record{
		{{Key: "name", Value: "sample.txt"}, {Key: "size", Value: int64(10)}},
		{{Key: "name", Value: "hat"}, {Key: "size", Value: int64(5)}},
	}
}

func TestParse(t *testing.T) {
	for _, valid := range []string{"table", "json", "csv"} {
		if _, err := Parse(valid); err != nil {
			t.Errorf("Parse(%q) returned error: %v", valid, err)
		}
	}

	_, err := Parse("yaml")
	var inputErr *errfmt.InputError
	if !errors.As(err, &inputErr) {
		t.Errorf("expected InputError for unknown format, got %T", err)
	}
}

func TestRender_Table(t *testing.T) {
	out, err := Render(sampleRecords(), Table, "")
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and two rows, got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "name") || !strings.Contains(lines[0], "size") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], "sample.txt") {
		t.Errorf("unexpected row %q", lines[1])
	}
}

func TestRender_TableEmpty(t *testing.T) {
	out, err := Render(nil, Table, "")
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if out != "(no results)" {
		t.Errorf("unexpected empty rendering %q", out)
	}
}

func TestRender_JSONKeepsFieldOrder(t *testing.T) {
	out, err := Render(sampleRecords(), JSON, "")
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if !strings.Contains(out, `"name": "sample.txt"`) {
		t.Errorf("missing name field:\n%s", out)
	}
	if strings.Index(out, `"name"`) > strings.Index(out, `"size"`) {
		t.Errorf("expected name before size:\n%s", out)
	}
}

func TestRender_JSONEmptyIsArray(t *testing.T) {
	out, err := Render(nil, JSON, "")
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("expected empty array, got %q", out)
	}
}

func TestRender_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.csv")

	out, err := Render(sampleRecords(), CSV, path)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(out, "Wrote 2 row(s)") {
		t.Errorf("unexpected confirmation %q", out)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	text := string(content)
	if !strings.HasPrefix(text, "name,size\n") {
		t.Errorf("unexpected csv header:\n%s", text)
	}
	if !strings.Contains(text, "hat,5") {
		t.Errorf("missing row:\n%s", text)
	}
}

func TestRender_CSVRequiresPath(t *testing.T) {
	_, err := Render(sampleRecords(), CSV, "")

	var inputErr *errfmt.InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected InputError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "--csv-path") {
		t.Errorf("error %q does not mention --csv-path", err.Error())
	}
}
