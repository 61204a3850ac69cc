package interval

import (
	"errors"
	"testing"
)

func mustSpan(t *testing.T, start, end string) Span {
	t.Helper()
	s, err := NewSpan(start, end)
	if err != nil {
		t.Fatalf("NewSpan(%q, %q) failed: %v", start, end, err)
	}
	return s
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"09:30", 570},
		{"23:59", 1439},
		{"10:00:00", 600}, // database reads carry seconds
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if err != nil {
			t.Errorf("ParseClock(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseClock_Invalid(t *testing.T) {
	for _, in := range []string{"", "9am", "25:00", "10:60", "banana", "10", "-1:00"} {
		if _, err := ParseClock(in); !errors.Is(err, ErrInvalidClock) {
			t.Errorf("ParseClock(%q) error = %v, want ErrInvalidClock", in, err)
		}
	}
}

func TestNewSpan_EmptyOrInverted(t *testing.T) {
	if _, err := NewSpan("10:00", "10:00"); !errors.Is(err, ErrEmptySpan) {
		t.Errorf("NewSpan(10:00, 10:00) error = %v, want ErrEmptySpan", err)
	}
	if _, err := NewSpan("11:00", "10:00"); !errors.Is(err, ErrEmptySpan) {
		t.Errorf("NewSpan(11:00, 10:00) error = %v, want ErrEmptySpan", err)
	}
}

func TestOverlaps_TouchingEndpointsDoNotConflict(t *testing.T) {
	a := mustSpan(t, "09:00", "10:00")
	b := mustSpan(t, "10:00", "11:00")
	if Overlaps(a, b) {
		t.Error("[09:00,10:00) and [10:00,11:00) should not overlap")
	}
	if Overlaps(b, a) {
		t.Error("overlap must be symmetric")
	}
}

func TestOverlaps_IdenticalIntervalsConflict(t *testing.T) {
	a := mustSpan(t, "09:00", "10:00")
	b := mustSpan(t, "09:00", "10:00")
	if !Overlaps(a, b) {
		t.Error("identical intervals should overlap")
	}
}

func TestOverlaps_PartialAndContained(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want bool
	}{
		{"partial overlap", mustSpan(t, "09:00", "10:30"), mustSpan(t, "10:00", "11:00"), true},
		{"contained", mustSpan(t, "09:00", "12:00"), mustSpan(t, "10:00", "11:00"), true},
		{"disjoint", mustSpan(t, "09:00", "10:00"), mustSpan(t, "11:00", "12:00"), false},
		{"one minute overlap", mustSpan(t, "09:00", "10:01"), mustSpan(t, "10:00", "11:00"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	window := mustSpan(t, "09:00", "12:00")

	inside := mustSpan(t, "10:00", "11:00")
	if !Contains(window, inside) {
		t.Error("[10:00,11:00) should fit inside [09:00,12:00)")
	}

	exact := mustSpan(t, "09:00", "12:00")
	if !Contains(window, exact) {
		t.Error("a window should contain itself")
	}

	spillover := mustSpan(t, "11:30", "12:30")
	if Contains(window, spillover) {
		t.Error("[11:30,12:30) spills past the end of [09:00,12:00)")
	}

	before := mustSpan(t, "08:00", "09:30")
	if Contains(window, before) {
		t.Error("[08:00,09:30) starts before [09:00,12:00)")
	}
}

// Scenario: a room has bookings at [09:00,10:00) and [11:00,12:00). A
// candidate at [10:00,11:00) fits exactly between them; a candidate at
// [09:30,10:30) collides with the first.
func TestFirstConflict_GapBetweenBookings(t *testing.T) {
	existing := []Span{
		mustSpan(t, "09:00", "10:00"),
		mustSpan(t, "11:00", "12:00"),
	}

	fits := mustSpan(t, "10:00", "11:00")
	if idx, ok := FirstConflict(fits, existing); ok {
		t.Errorf("[10:00,11:00) should fit in the gap, conflicted with index %d", idx)
	}

	collides := mustSpan(t, "09:30", "10:30")
	idx, ok := FirstConflict(collides, existing)
	if !ok {
		t.Fatal("[09:30,10:30) should conflict")
	}
	if idx != 0 {
		t.Errorf("conflict index = %d, want 0", idx)
	}
}

func TestFirstConflict_Empty(t *testing.T) {
	candidate := mustSpan(t, "09:00", "10:00")
	if _, ok := FirstConflict(candidate, nil); ok {
		t.Error("no existing spans should mean no conflict")
	}
}
