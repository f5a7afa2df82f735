// internal/model/record.go
package model

import "time"

// Canonical field keys the unifier writes into every record, next to the
// raw source columns. Output mappings may reference either kind.
const (
	FieldName        = "name"
	FieldPhone       = "phone"
	FieldWhatsapp    = "whatsapp"
	FieldEmail       = "email"
	FieldProgram     = "program"
	FieldProgramCode = "program_code"
	FieldStatus      = "status"
	FieldLeadDate    = "lead_date"
)

// Record is one lead after column aliasing and normalization. Fields holds
// every raw source column plus the canonical normalized ones above. A record
// is never mutated after the unifier produces it.
type Record struct {
	Fields map[string]string `json:"fields"`

	// LeadDate is the parsed lead-insertion date, truncated to a calendar
	// day. LeadDateValid is false when the source value was missing or
	// unparseable; such records never match a date filter.
	LeadDate      time.Time `json:"lead_date"`
	LeadDateValid bool      `json:"lead_date_valid"`
}

// Field returns the value for a field name, or "" when absent.
func (r Record) Field(name string) string {
	return r.Fields[name]
}
