// Package segment applies a client's ordered group rules to a unified
// record set. Each group filters independently: membership is
// non-exclusive, a record can land in every group whose predicates it
// satisfies.
package segment

import (
	"time"

	"github.com/unclebandit/leadsegment-backend/internal/dates"
	"github.com/unclebandit/leadsegment-backend/internal/model"
)

// Options are the per-run switches the operator controls.
type Options struct {
	// DedupeByPhone collapses records sharing a normalized phone number
	// within each group, keeping the first occurrence in unified order.
	DedupeByPhone bool
}

// GroupResult pairs one active group with the records that matched it.
// Records keep unified-set order; the segmenter never sorts.
type GroupResult struct {
	Spec    model.GroupSpec
	Records []model.Record
}

// Segment filters records through each active group in configured order.
// Inactive groups are skipped entirely and do not appear in the result,
// not even as empty. Groups that matched nothing do appear, with zero
// records, so callers can report them.
func Segment(records []model.Record, groups []model.GroupSpec, reference time.Time, opts Options) []GroupResult {
	weekday := dates.WeekdayName(reference)

	results := make([]GroupResult, 0, len(groups))
	for _, g := range groups {
		if !g.Active {
			continue
		}

		statusSet, matchAll := g.Statuses.MatchSet(weekday)

		var validDates map[time.Time]struct{}
		if g.Dates.Enabled {
			validDates = dates.Resolve(reference, g.Dates.DaysBefore)
		}

		var subset []model.Record
		seenPhones := make(map[string]struct{})
		for _, rec := range records {
			if !matchAll {
				if _, ok := statusSet[rec.Field(model.FieldStatus)]; !ok {
					continue
				}
			}
			if g.Dates.Enabled {
				if !rec.LeadDateValid {
					continue
				}
				if _, ok := validDates[rec.LeadDate]; !ok {
					continue
				}
			}
			if opts.DedupeByPhone {
				phone := rec.Field(model.FieldPhone)
				if phone != "" {
					if _, dup := seenPhones[phone]; dup {
						continue
					}
					seenPhones[phone] = struct{}{}
				}
			}
			subset = append(subset, rec)
		}

		results = append(results, GroupResult{Spec: g, Records: subset})
	}
	return results
}
