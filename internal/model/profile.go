// internal/model/profile.go
package model

// StatusMode discriminates the three shapes a group's status filter takes.
type StatusMode string

const (
	StatusAny     StatusMode = "any"     // every status matches
	StatusList    StatusMode = "list"    // plain set of status labels
	StatusWeekday StatusMode = "weekday" // weekday name -> set of status labels
)

// StatusFilter is the tagged variant for a group's status rule. Exactly one
// of Values/ByWeekday is meaningful depending on Mode.
type StatusFilter struct {
	Mode      StatusMode          `yaml:"mode" json:"mode"`
	Values    []string            `yaml:"values,omitempty" json:"values,omitempty"`
	ByWeekday map[string][]string `yaml:"by_weekday,omitempty" json:"by_weekday,omitempty"`
}

// MatchSet resolves the filter against a weekday name once per run.
// matchAll is true when every status passes. A weekday missing from a
// weekday-mapped filter yields an empty set, so nothing passes.
func (f StatusFilter) MatchSet(weekday string) (set map[string]struct{}, matchAll bool) {
	switch f.Mode {
	case StatusAny:
		return nil, true
	case StatusWeekday:
		set = make(map[string]struct{})
		for _, v := range f.ByWeekday[weekday] {
			set[v] = struct{}{}
		}
		return set, false
	default:
		set = make(map[string]struct{})
		for _, v := range f.Values {
			set[v] = struct{}{}
		}
		return set, false
	}
}

// DateFilter is the tagged variant for a group's relative-date rule.
// A single "days before" integer in configuration is normalized to a
// one-element set at load time, never at filter time.
type DateFilter struct {
	Enabled    bool  `yaml:"enabled" json:"enabled"`
	DaysBefore []int `yaml:"days_before,omitempty" json:"days_before,omitempty"`
}

// GroupSpec is one named segmentation rule.
type GroupSpec struct {
	Name     string       `yaml:"name" json:"name"`
	Statuses StatusFilter `yaml:"statuses" json:"statuses"`
	Dates    DateFilter   `yaml:"dates" json:"dates"`
	Active   bool         `yaml:"active" json:"active"`
}

// ColumnMap maps one source field to one destination column.
type ColumnMap struct {
	Source string `yaml:"source" json:"source"`
	Dest   string `yaml:"dest" json:"dest"`
}

// ColumnMapping is the ordered output layout for a client. Destination
// names are unique within one mapping.
type ColumnMapping []ColumnMap

// Hooks are the per-client normalization switches. Everything a client does
// beyond the standard field cleanup lives here, so the unifier itself
// carries no per-client branches.
type Hooks struct {
	// FirstNameOnly keeps only the first given-name token, capitalized.
	// Clients whose exports pre-split first/last name leave it off.
	FirstNameOnly bool `yaml:"first_name_only" json:"first_name_only"`
	// SplitStatusCode reduces "12 - Volver a llamar" style labels to the
	// leading code.
	SplitStatusCode bool `yaml:"split_status_code" json:"split_status_code"`
	// ProgramCodes maps a program label to an export code. The "*" key is
	// the default for unlisted programs.
	ProgramCodes map[string]string `yaml:"program_codes,omitempty" json:"program_codes,omitempty"`
}

// ClientProfile is the full static configuration for one client. Profiles
// are values: a run owns its copy and no run observes edits mid-flight.
type ClientProfile struct {
	ID     string      `yaml:"id" json:"id"`
	Name   string      `yaml:"name" json:"name"`
	Groups []GroupSpec `yaml:"groups" json:"groups"`

	// Output is the ordered column layout for emitted files.
	Output ColumnMapping `yaml:"output" json:"output"`

	// SourceAliases maps a canonical field to the raw headers it may
	// appear under. The first alias present in a table wins; matching is
	// exact, case- and accent-sensitive.
	SourceAliases map[string][]string `yaml:"source_aliases" json:"source_aliases"`

	// TimestampLayouts are tried in order against the lead-date column.
	TimestampLayouts []string `yaml:"timestamp_layouts,omitempty" json:"timestamp_layouts,omitempty"`

	Hooks Hooks `yaml:"hooks" json:"hooks"`

	// FilePattern names emitted artifacts. Tokens: {client}, {group},
	// {date} (DD-MM-YYYY). Empty means the default "{group} {date}.xlsx".
	FilePattern string `yaml:"file_pattern,omitempty" json:"file_pattern,omitempty"`
}

// Empty reports whether the profile has nothing to segment. The registry
// returns an empty profile for unknown client ids instead of failing.
func (p ClientProfile) Empty() bool {
	return len(p.Groups) == 0
}
