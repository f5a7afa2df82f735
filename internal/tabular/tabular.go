// Package tabular decodes uploaded spreadsheets into plain header+rows
// tables and encodes result sets back into spreadsheet bytes. The rest of
// the pipeline treats it as a black box: bytes in, rows out.
package tabular

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Table is one decoded input: a header row plus data rows. Rows may be
// shorter than the header when trailing cells are empty.
type Table struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// Index returns the column position of an exact header match, or -1.
// Matching is case- and accent-sensitive on purpose: client aliases list
// every observed spelling explicitly.
func (t *Table) Index(header string) int {
	for i, h := range t.Headers {
		if h == header {
			return i
		}
	}
	return -1
}

// Cell returns row[col] or "" when the row is short.
func (t *Table) Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// FormatError means one input could not be decoded at all. It is distinct
// from an empty table, which decodes fine and simply has no rows.
type FormatError struct {
	Source string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot decode %s: %s", e.Source, e.Reason)
}

// NewFormatError builds a FormatError for one source file.
func NewFormatError(source, reason string) error {
	return &FormatError{Source: source, Reason: reason}
}

// Read decodes raw bytes into a Table, picking the codec from the file
// extension. Anything that is not .csv is treated as a workbook.
func Read(data []byte, name string) (*Table, error) {
	if strings.EqualFold(filepath.Ext(name), ".csv") {
		return ReadCSV(data, name)
	}
	return ReadXLSX(data, name)
}
