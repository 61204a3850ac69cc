// Package interval implements the half-open time interval arithmetic shared
// by availability windows and bookings. Times are minutes from midnight.
package interval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidClock = errors.New("invalid clock format, use HH:MM")
	ErrEmptySpan    = errors.New("span start must be before span end")
)

// Span is a half-open interval [Start, End) in minutes from midnight.
type Span struct {
	Start int
	End   int
}

// ParseClock parses "HH:MM" (or "HH:MM:SS", as returned by a time column)
// into minutes from midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, ErrInvalidClock
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, ErrInvalidClock
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, ErrInvalidClock
	}

	return hour*60 + minute, nil
}

// NewSpan builds a span from two clock strings and rejects empty or
// inverted intervals.
func NewSpan(start, end string) (Span, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Span{}, fmt.Errorf("start: %w", err)
	}
	e, err := ParseClock(end)
	if err != nil {
		return Span{}, fmt.Errorf("end: %w", err)
	}
	if s >= e {
		return Span{}, ErrEmptySpan
	}
	return Span{Start: s, End: e}, nil
}

// Overlaps reports whether two half-open intervals intersect. Touching
// endpoints do not overlap: [9:00,10:00) and [10:00,11:00) are compatible.
func Overlaps(a, b Span) bool {
	return a.Start < b.End && b.Start < a.End
}

// Contains reports whether inner lies fully within outer.
func Contains(outer, inner Span) bool {
	return outer.Start <= inner.Start && inner.End <= outer.End
}

// FirstConflict returns the index of some existing span overlapping the
// candidate. No ordering guarantee beyond "a conflict exists"; any hit is a
// hard rejection for the caller.
func FirstConflict(candidate Span, existing []Span) (int, bool) {
	for i, s := range existing {
		if Overlaps(candidate, s) {
			return i, true
		}
	}
	return -1, false
}
