// internal/errors/errors.go
package appErrors

import (
	"fmt"
	"strings"
)

// NoDataError means unification produced zero records: the one condition
// that halts a run. "Group has zero matches" is normal flow, never this.
type NoDataError struct {
	ClientID string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no usable records for client %s", e.ClientID)
}

// Helper constructor
func NewNoData(clientID string) error {
	return &NoDataError{ClientID: clientID}
}

// MissingColumnError is the warning raised when output columns reference
// source fields absent from every input table. The run still completes
// with those columns empty, but operators should notice malformed input.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("output columns missing from all inputs: %s", strings.Join(e.Columns, ", "))
}

func NewMissingColumns(columns []string) error {
	return &MissingColumnError{Columns: columns}
}
