package entity

import "testing"

func TestValidBookingStatus(t *testing.T) {
	for _, s := range []BookingStatus{BookingStatusScheduled, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted} {
		if !ValidBookingStatus(s) {
			t.Errorf("ValidBookingStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []BookingStatus{"", "PENDING", "programada", "DONE"} {
		if ValidBookingStatus(s) {
			t.Errorf("ValidBookingStatus(%q) = true, want false", s)
		}
	}
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to BookingStatus
		want     bool
	}{
		{BookingStatusScheduled, BookingStatusConfirmed, true},
		{BookingStatusScheduled, BookingStatusCancelled, true},
		{BookingStatusScheduled, BookingStatusCompleted, false},
		{BookingStatusConfirmed, BookingStatusCompleted, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusScheduled, false},
		{BookingStatusCancelled, BookingStatusScheduled, false},
		{BookingStatusCancelled, BookingStatusConfirmed, false},
		{BookingStatusCompleted, BookingStatusCancelled, false},
		{BookingStatusCompleted, BookingStatusConfirmed, false},
	}
	for _, tt := range tests {
		b := &Booking{Status: tt.from}
		if got := b.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestBookingActive(t *testing.T) {
	active := true
	inactive := false

	b := &Booking{}
	if !b.Active() {
		t.Error("nil IsActive should count as active")
	}
	b.IsActive = &active
	if !b.Active() {
		t.Error("true IsActive should count as active")
	}
	b.IsActive = &inactive
	if b.Active() {
		t.Error("false IsActive should count as inactive")
	}
}

func TestIsConfirmed(t *testing.T) {
	b := &Booking{Status: BookingStatusScheduled}
	if b.IsConfirmed() {
		t.Error("PROGRAMADA should not be confirmed")
	}
	b.Status = BookingStatusConfirmed
	if !b.IsConfirmed() {
		t.Error("CONFIRMADA should be confirmed")
	}
}
