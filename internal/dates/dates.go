// Package dates does the relative-date arithmetic behind date-filtered
// groups: a reference date plus a set of "days before" offsets resolves to
// the concrete calendar dates a lead date must fall on.
package dates

import "time"

// DateOnly truncates a timestamp to its calendar day in UTC. Every date
// comparison in the pipeline goes through this so map keys line up.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Resolve returns the set of dates reference-d for each d in daysBefore.
// 0 means the reference date itself; duplicates collapse. An empty
// daysBefore resolves to the empty set, which matches nothing: a group
// with date filtering on but no days selected is a valid configuration.
func Resolve(reference time.Time, daysBefore []int) map[time.Time]struct{} {
	set := make(map[time.Time]struct{}, len(daysBefore))
	ref := DateOnly(reference)
	for _, d := range daysBefore {
		set[ref.AddDate(0, 0, -d)] = struct{}{}
	}
	return set
}

// weekdayNames are the Spanish day names client configurations key
// weekday-mapped status filters by.
var weekdayNames = map[time.Weekday]string{
	time.Monday:    "Lunes",
	time.Tuesday:   "Martes",
	time.Wednesday: "Miércoles",
	time.Thursday:  "Jueves",
	time.Friday:    "Viernes",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

// WeekdayName returns the configuration name for t's weekday.
func WeekdayName(t time.Time) string {
	return weekdayNames[t.Weekday()]
}
