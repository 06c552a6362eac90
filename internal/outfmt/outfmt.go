package outfmt

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/teemow/gdrive/internal/errfmt"
)

// Format selects how records are rendered.
type Format string

const (
	Table Format = "table"
	JSON  Format = "json"
	CSV   Format = "csv"
)

// Parse validates a format flag value.
func Parse(value string) (Format, error) {
	switch Format(value) {
	case Table, JSON, CSV:
		return Format(value), nil
	default:
		return "", errfmt.Inputf("invalid output format %q (expected table, json, or csv)", value)
	}
}

// Field is one column of a record. Records keep their column order, which
// maps cannot.
type Field struct {
	Key   string
	Value any
}

// Record is an ordered list of fields.
type Record []Field

// MarshalJSON renders the record as an object with fields in order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(field.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Render produces the printable representation of the records: an aligned
// table, indented JSON, or a confirmation string after writing a CSV file to
// csvPath. CSV without a destination path is an input error.
func Render(records []Record, format Format, csvPath string) (string, error) {
	switch format {
	case JSON:
		return renderJSON(records)
	case CSV:
		return renderCSV(records, csvPath)
	default:
		return renderTable(records), nil
	}
}

func renderTable(records []Record) string {
	if len(records) == 0 {
		return "(no results)"
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)

	headers := make([]string, len(records[0]))
	for i, field := range records[0] {
		headers[i] = field.Key
	}
	fmt.Fprintln(w, strings.Join(headers, "\t"))

	for _, record := range records {
		cells := make([]string, len(record))
		for i, field := range record {
			cells[i] = cellString(field.Value)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}

	_ = w.Flush()
	return strings.TrimRight(buf.String(), "\n")
}

func renderJSON(records []Record) (string, error) {
	if records == nil {
		records = []Record{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}
	return string(data), nil
}

func renderCSV(records []Record, csvPath string) (string, error) {
	if csvPath == "" {
		return "", errfmt.Inputf("csv output requires --csv-path")
	}

	file, err := os.Create(csvPath)
	if err != nil {
		return "", fmt.Errorf("create csv file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if len(records) > 0 {
		headers := make([]string, len(records[0]))
		for i, field := range records[0] {
			headers[i] = field.Key
		}
		if err := w.Write(headers); err != nil {
			return "", fmt.Errorf("write csv header: %w", err)
		}
	}

	for _, record := range records {
		cells := make([]string, len(record))
		for i, field := range record {
			cells[i] = cellString(field.Value)
		}
		if err := w.Write(cells); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}

	return fmt.Sprintf("Wrote %d row(s) to %s", len(records), csvPath), nil
}

func cellString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case bool:
		return fmt.Sprintf("%t", value)
	default:
		return fmt.Sprintf("%v", value)
	}
}
