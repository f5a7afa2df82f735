package dates

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveEmptySet(t *testing.T) {
	got := Resolve(day(2024, 5, 10), nil)
	if len(got) != 0 {
		t.Errorf("Resolve with no offsets = %v, want empty set", got)
	}
	got = Resolve(day(2024, 5, 10), []int{})
	if len(got) != 0 {
		t.Errorf("Resolve with empty offsets = %v, want empty set", got)
	}
}

func TestResolveZeroAndOne(t *testing.T) {
	ref := day(2024, 5, 10)
	got := Resolve(ref, []int{0, 1})

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if _, ok := got[day(2024, 5, 10)]; !ok {
		t.Error("missing reference date itself (offset 0)")
	}
	if _, ok := got[day(2024, 5, 9)]; !ok {
		t.Error("missing reference - 1 day")
	}
}

func TestResolveDuplicatesCollapse(t *testing.T) {
	got := Resolve(day(2024, 5, 10), []int{1, 1, 1})
	if len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
}

func TestResolveCrossesMonthBoundary(t *testing.T) {
	got := Resolve(day(2024, 3, 1), []int{1})
	if _, ok := got[day(2024, 2, 29)]; !ok {
		t.Errorf("expected 2024-02-29 in %v", got)
	}
}

func TestResolveIgnoresTimeOfDay(t *testing.T) {
	ref := time.Date(2024, 5, 10, 17, 45, 12, 0, time.UTC)
	got := Resolve(ref, []int{0})
	if _, ok := got[day(2024, 5, 10)]; !ok {
		t.Errorf("expected truncated date in %v", got)
	}
}

func TestWeekdayName(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{day(2024, 5, 6), "Lunes"},
		{day(2024, 5, 7), "Martes"},
		{day(2024, 5, 8), "Miércoles"},
		{day(2024, 5, 9), "Jueves"},
		{day(2024, 5, 10), "Viernes"},
		{day(2024, 5, 11), "Sábado"},
		{day(2024, 5, 12), "Domingo"},
	}

	for _, tt := range tests {
		if got := WeekdayName(tt.date); got != tt.want {
			t.Errorf("WeekdayName(%s) = %q, want %q", tt.date.Format("2006-01-02"), got, tt.want)
		}
	}
}
