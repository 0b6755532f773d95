package models

import (
	"testing"
	"time"
)

func TestWeekdayIndex(t *testing.T) {
	cases := []struct {
		date time.Time
		want int
	}{
		{time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC), 0}, // Monday
		{time.Date(2024, 3, 21, 0, 0, 0, 0, time.UTC), 3}, // Thursday
		{time.Date(2024, 3, 23, 0, 0, 0, 0, time.UTC), 5}, // Saturday
		{time.Date(2024, 3, 24, 0, 0, 0, 0, time.UTC), 6}, // Sunday
	}
	for _, tc := range cases {
		if got := WeekdayIndex(tc.date); got != tc.want {
			t.Fatalf("WeekdayIndex(%s) = %d, want %d", tc.date.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestWorkingWindowValidate(t *testing.T) {
	valid := WorkingWindow{Weekday: 0, Start: "09:00", End: "17:00"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid window rejected: %v", err)
	}

	// Zero-length windows are allowed.
	point := WorkingWindow{Weekday: 3, Start: "12:00", End: "12:00"}
	if err := point.Validate(); err != nil {
		t.Fatalf("zero-length window rejected: %v", err)
	}

	bad := []WorkingWindow{
		{Weekday: -1, Start: "09:00", End: "17:00"},
		{Weekday: 7, Start: "09:00", End: "17:00"},
		{Weekday: 1, Start: "17:00", End: "09:00"},
		{Weekday: 1, Start: "9am", End: "17:00"},
		{Weekday: 1, Start: "09:00", End: ""},
	}
	for i, w := range bad {
		if err := w.Validate(); err == nil {
			t.Fatalf("case %d: expected validation error for %+v", i, w)
		}
	}
}

func TestWorkingWindowCovers(t *testing.T) {
	w := WorkingWindow{Weekday: 0, Start: "09:00", End: "17:00"} // Monday

	monday := func(hour, min int) time.Time {
		return time.Date(2024, 3, 18, hour, min, 0, 0, time.UTC)
	}

	if !w.Covers(monday(10, 30)) {
		t.Fatalf("expected 10:30 Monday to be covered")
	}
	// Bounds are inclusive on both ends.
	if !w.Covers(monday(9, 0)) {
		t.Fatalf("expected window start to be covered")
	}
	if !w.Covers(monday(17, 0)) {
		t.Fatalf("expected window end to be covered")
	}
	if w.Covers(monday(8, 59)) {
		t.Fatalf("expected 08:59 to be outside the window")
	}
	if w.Covers(monday(17, 1)) {
		t.Fatalf("expected 17:01 to be outside the window")
	}
	// Same clock time on a Tuesday is not covered.
	if w.Covers(time.Date(2024, 3, 19, 10, 30, 0, 0, time.UTC)) {
		t.Fatalf("expected Tuesday to be outside a Monday window")
	}
}

func TestWorkingWindowCoversSecondsWithinBound(t *testing.T) {
	w := WorkingWindow{Weekday: 0, Start: "09:00", End: "17:00"}

	// 17:00:30 is past the inclusive end.
	if w.Covers(time.Date(2024, 3, 18, 17, 0, 30, 0, time.UTC)) {
		t.Fatalf("expected seconds past the end bound to be outside")
	}
	if !w.Covers(time.Date(2024, 3, 18, 16, 59, 59, 0, time.UTC)) {
		t.Fatalf("expected 16:59:59 to be covered")
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusConfirmed, StatusCancelled, StatusCompleted} {
		if !ValidStatus(s) {
			t.Fatalf("expected %q to be a valid status", s)
		}
	}
	if ValidStatus("tentative") || ValidStatus("") {
		t.Fatalf("unexpected status accepted")
	}
}
