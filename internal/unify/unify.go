// Package unify turns raw uploaded tables into one unified record set for
// a client: alias resolution, field normalization, lead-date parsing,
// concatenation. Per-client behavior is entirely profile-driven; there is
// no client branching here.
package unify

import (
	"time"

	"github.com/unclebandit/leadsegment-backend/internal/dates"
	"github.com/unclebandit/leadsegment-backend/internal/model"
	"github.com/unclebandit/leadsegment-backend/internal/normalize"
	"github.com/unclebandit/leadsegment-backend/internal/tabular"
)

// Input is one raw uploaded file.
type Input struct {
	Name string
	Data []byte
}

// TableWarning records one input that could not be decoded and was
// skipped. Skipping never aborts the remaining tables.
type TableWarning struct {
	Table  string `json:"table"`
	Reason string `json:"reason"`
}

// Result is the unified record set plus the audit counts the caller must
// surface. Zero records is a valid result here; halting on it is the
// caller's job.
type Result struct {
	Records      []model.Record
	InvalidDates int
	Skipped      []TableWarning
}

// Unify decodes, aliases, normalizes and concatenates the inputs in the
// order given. Row order within each table is preserved.
func Unify(inputs []Input, profile model.ClientProfile) Result {
	var res Result
	for _, in := range inputs {
		table, err := tabular.Read(in.Data, in.Name)
		if err != nil {
			res.Skipped = append(res.Skipped, TableWarning{Table: in.Name, Reason: err.Error()})
			continue
		}
		unifyTable(table, profile, &res)
	}
	return res
}

func unifyTable(t *tabular.Table, p model.ClientProfile, res *Result) {
	cols := resolveAliases(t, p.SourceAliases)

	for _, row := range t.Rows {
		rec := model.Record{Fields: make(map[string]string, len(t.Headers)+8)}
		for i, h := range t.Headers {
			rec.Fields[h] = t.Cell(row, i)
		}

		setCanonical(&rec, t, row, cols, p.Hooks)

		dateCol, hasDate := cols[model.FieldLeadDate]
		if hasDate {
			raw := t.Cell(row, dateCol)
			if parsed, ok := parseLeadDate(raw, p.TimestampLayouts); ok {
				rec.LeadDate = parsed
				rec.LeadDateValid = true
			} else {
				res.InvalidDates++
			}
		}

		res.Records = append(res.Records, rec)
	}
}

// resolveAliases maps each canonical field to the first alias present in
// the table. Matching is exact: case and accents matter.
func resolveAliases(t *tabular.Table, aliases map[string][]string) map[string]int {
	cols := make(map[string]int, len(aliases))
	for field, candidates := range aliases {
		for _, alias := range candidates {
			if idx := t.Index(alias); idx >= 0 {
				cols[field] = idx
				break
			}
		}
	}
	return cols
}

func setCanonical(rec *model.Record, t *tabular.Table, row []string, cols map[string]int, hooks model.Hooks) {
	if idx, ok := cols[model.FieldName]; ok {
		raw := t.Cell(row, idx)
		if hooks.FirstNameOnly {
			rec.Fields[model.FieldName] = normalize.Name(raw)
		} else {
			rec.Fields[model.FieldName] = normalize.Label(raw)
		}
	}
	if idx, ok := cols[model.FieldPhone]; ok {
		rec.Fields[model.FieldPhone] = normalize.Phone(t.Cell(row, idx))
	}
	if idx, ok := cols[model.FieldWhatsapp]; ok {
		rec.Fields[model.FieldWhatsapp] = normalize.Phone(t.Cell(row, idx))
	}
	if idx, ok := cols[model.FieldEmail]; ok {
		rec.Fields[model.FieldEmail] = normalize.Email(t.Cell(row, idx))
	}
	if idx, ok := cols[model.FieldProgram]; ok {
		program := normalize.Label(t.Cell(row, idx))
		rec.Fields[model.FieldProgram] = program
		if len(hooks.ProgramCodes) > 0 {
			code, ok := hooks.ProgramCodes[program]
			if !ok {
				code = hooks.ProgramCodes["*"]
			}
			rec.Fields[model.FieldProgramCode] = code
		}
	}
	if idx, ok := cols[model.FieldStatus]; ok {
		status := normalize.Label(t.Cell(row, idx))
		if hooks.SplitStatusCode {
			status = normalize.CodePrefix(status)
		}
		rec.Fields[model.FieldStatus] = status
	}
	if idx, ok := cols[model.FieldLeadDate]; ok {
		rec.Fields[model.FieldLeadDate] = t.Cell(row, idx)
	}
}

func parseLeadDate(raw string, layouts []string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return dates.DateOnly(t), true
		}
	}
	return time.Time{}, false
}
