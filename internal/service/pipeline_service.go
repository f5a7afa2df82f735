// internal/service/pipeline_service.go
package service

import (
	"time"

	"github.com/unclebandit/leadsegment-backend/internal/emit"
	appErrors "github.com/unclebandit/leadsegment-backend/internal/errors"
	"github.com/unclebandit/leadsegment-backend/internal/model"
	"github.com/unclebandit/leadsegment-backend/internal/registry"
	"github.com/unclebandit/leadsegment-backend/internal/segment"
	"github.com/unclebandit/leadsegment-backend/internal/unify"
)

// PipelineService runs one segmentation pass: unify the uploads, apply
// the client's groups, emit one artifact per non-empty group. It returns
// every count the operator needs and never logs them itself.
type PipelineService struct {
	Registry *registry.Registry
}

// RunRequest describes one processing run. Profile, when set, overrides
// the registry lookup. That is how callers run session-local edits
// without mutating shared configuration.
type RunRequest struct {
	ClientID  string
	Reference time.Time
	Inputs    []unify.Input
	Dedupe    bool
	Profile   *model.ClientProfile
}

// GroupSummary reports one active group's outcome. Zero-record groups are
// reported too; they just have no artifact.
type GroupSummary struct {
	Name     string `json:"name"`
	Records  int    `json:"records"`
	FileName string `json:"file_name,omitempty"`
}

// Artifact is one downloadable spreadsheet.
type Artifact struct {
	FileName string
	Content  []byte
}

// RunResult carries the outputs and the audit counts of one run.
type RunResult struct {
	ClientID       string               `json:"client_id"`
	Reference      time.Time            `json:"reference"`
	TotalRecords   int                  `json:"total_records"`
	InvalidDates   int                  `json:"invalid_dates"`
	SkippedTables  []unify.TableWarning `json:"skipped_tables,omitempty"`
	MissingColumns []string             `json:"missing_columns,omitempty"`
	Groups         []GroupSummary       `json:"groups"`
	Artifacts      []Artifact           `json:"-"`
}

// Artifact returns the artifact with the given file name, or nil.
func (r *RunResult) Artifact(fileName string) *Artifact {
	for i := range r.Artifacts {
		if r.Artifacts[i].FileName == fileName {
			return &r.Artifacts[i]
		}
	}
	return nil
}

// Run executes the pipeline. The only fatal condition is zero usable
// records after unification; skipped tables and invalid dates are
// absorbed into the result counts.
func (s *PipelineService) Run(req RunRequest) (*RunResult, error) {
	profile := s.Registry.ProfileFor(req.ClientID)
	if req.Profile != nil {
		profile = *req.Profile
	}

	unified := unify.Unify(req.Inputs, profile)

	result := &RunResult{
		ClientID:      req.ClientID,
		Reference:     req.Reference,
		TotalRecords:  len(unified.Records),
		InvalidDates:  unified.InvalidDates,
		SkippedTables: unified.Skipped,
	}

	if len(unified.Records) == 0 {
		return result, appErrors.NewNoData(req.ClientID)
	}

	result.MissingColumns = emit.MissingColumns(unified.Records, profile.Output)

	groupResults := segment.Segment(unified.Records, profile.Groups, req.Reference,
		segment.Options{DedupeByPhone: req.Dedupe})

	for _, gr := range groupResults {
		summary := GroupSummary{Name: gr.Spec.Name, Records: len(gr.Records)}
		if len(gr.Records) > 0 {
			content, err := emit.Emit(gr.Records, profile.Output)
			if err != nil {
				return result, err
			}
			summary.FileName = emit.FileName(profile.FilePattern, profile.ID, gr.Spec.Name, req.Reference)
			result.Artifacts = append(result.Artifacts, Artifact{
				FileName: summary.FileName,
				Content:  content,
			})
		}
		result.Groups = append(result.Groups, summary)
	}

	return result, nil
}
