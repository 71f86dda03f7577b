// Package bulkimport parses flat CSV apartment data, normalizes it into
// upload records, and pushes it to the backend with a tiered fallback
// strategy that isolates per-row failures.
package bulkimport

import (
	"errors"
	"slices"
	"strings"
)

// ErrEmptyFile indicates the file had no non-blank lines at all.
var ErrEmptyFile = errors.New("empty file")

// ErrNoRows indicates the file had a header but no data rows.
var ErrNoRows = errors.New("no rows parsed from file")

// RequiredColumns must all appear in the header row; a file missing any of
// them is rejected before a single request goes out.
var RequiredColumns = []string{"title", "apartmentNumber", "communityId"}

// MissingColumnsError names the required columns absent from the header.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "missing required column(s): " + strings.Join(e.Columns, ", ")
}

// Row maps header names to the raw cell text of one source line.
type Row map[string]string

// Document is a parsed import file. Rows keep source order: row i came
// from data line i, which is what failure reports index by.
type Document struct {
	Headers []string
	Rows    []Row
}

// Parse splits raw file text into a header row and data rows. The grammar
// is deliberately flat: one row per line (bare or CRLF endings), cells
// split on commas and trimmed, no quoting or escaped commas. Rows shorter
// than the header are padded with empty cells; extra trailing cells are
// dropped.
func Parse(text string) (*Document, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, ErrEmptyFile
	}

	headers := splitFields(lines[0])
	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		cells := splitFields(line)
		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(cells) {
				row[h] = cells[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return &Document{Headers: headers, Rows: rows}, nil
}

func splitFields(line string) []string {
	cells := strings.Split(line, ",")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

// Validate checks that every required column is present, reporting the
// missing ones in RequiredColumns order.
func (d *Document) Validate() error {
	var missing []string
	for _, required := range RequiredColumns {
		if !slices.Contains(d.Headers, required) {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Columns: missing}
	}
	return nil
}
