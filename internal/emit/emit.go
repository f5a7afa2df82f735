// Package emit renders a group's record subset into downloadable
// spreadsheet bytes using the client's declared output layout.
package emit

import (
	"strings"
	"time"

	"github.com/unclebandit/leadsegment-backend/internal/model"
	"github.com/unclebandit/leadsegment-backend/internal/tabular"
)

// DefaultFilePattern is the artifact name used when a profile declares none.
const DefaultFilePattern = "{group} {date}.xlsx"

// datePattern is the DD-MM-YYYY layout used inside artifact names.
const datePattern = "02-01-2006"

// Emit builds one output row per record, columns in mapping order. A
// source field absent from a record yields an empty cell under its
// destination header, never an error. Identical input yields identical
// bytes, modulo the workbook encoder itself.
func Emit(records []model.Record, mapping model.ColumnMapping) ([]byte, error) {
	headers := make([]string, len(mapping))
	for i, cm := range mapping {
		headers[i] = cm.Dest
	}

	rows := make([][]string, len(records))
	for i, rec := range records {
		row := make([]string, len(mapping))
		for j, cm := range mapping {
			row[j] = rec.Field(cm.Source)
		}
		rows[i] = row
	}

	return tabular.WriteXLSX(headers, rows)
}

// MissingColumns lists mapping sources absent from every record, in
// mapping order. Those columns still emit (empty); callers surface the
// list as a warning so operators notice malformed input.
func MissingColumns(records []model.Record, mapping model.ColumnMapping) []string {
	var missing []string
	for _, cm := range mapping {
		found := false
		for _, rec := range records {
			if _, ok := rec.Fields[cm.Source]; ok {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, cm.Source)
		}
	}
	return missing
}

// FileName expands an artifact naming pattern. Tokens: {client}, {group},
// {date}. An empty pattern falls back to DefaultFilePattern.
func FileName(pattern, clientID, group string, reference time.Time) string {
	if pattern == "" {
		pattern = DefaultFilePattern
	}
	name := pattern
	name = strings.ReplaceAll(name, "{client}", clientID)
	name = strings.ReplaceAll(name, "{group}", group)
	name = strings.ReplaceAll(name, "{date}", reference.Format(datePattern))
	return name
}
