package usecase

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestSlotLockKeys_Deterministic(t *testing.T) {
	roomID := uuid.New()
	professionalID := uuid.New()
	date := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)

	a := slotLockKeys(roomID, professionalID, date)
	b := slotLockKeys(roomID, professionalID, date)

	if len(a) != 2 || len(b) != 2 {
		t.Fatalf("expected 2 keys, got %d and %d", len(a), len(b))
	}
	if a[0] != b[0] || a[1] != b[1] {
		t.Errorf("same inputs produced different keys: %v vs %v", a, b)
	}
	if a[0] > a[1] {
		t.Errorf("keys not sorted: %v", a)
	}
}

func TestSlotLockKeys_VaryByDate(t *testing.T) {
	roomID := uuid.New()
	professionalID := uuid.New()
	monday := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	a := slotLockKeys(roomID, professionalID, monday)
	b := slotLockKeys(roomID, professionalID, tuesday)

	if a[0] == b[0] && a[1] == b[1] {
		t.Error("different dates should produce different lock keys")
	}
}

func TestWindowLockKeys_Sorted(t *testing.T) {
	keys := windowLockKeys(uuid.New(), uuid.New(), time.Wednesday)
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(keys))
	}
	if keys[0] > keys[1] {
		t.Errorf("keys not sorted: %v", keys)
	}
}

func TestIsDuplicateKeyError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	if !isDuplicateKeyError(dup, "email") {
		t.Error("should match unique violation on the email constraint")
	}
	if isDuplicateKeyError(dup, "document") {
		t.Error("should not match a different constraint name")
	}

	fk := &pgconn.PgError{Code: "23503", ConstraintName: "users_email_key"}
	if isDuplicateKeyError(fk, "email") {
		t.Error("foreign key violation is not a duplicate key error")
	}

	if isDuplicateKeyError(errors.New("plain"), "email") {
		t.Error("non-pg error should not match")
	}

	wrapped := fmt.Errorf("create user: %w", dup)
	if !isDuplicateKeyError(wrapped, "email") {
		t.Error("should unwrap to find the pg error")
	}
}

func TestIsExclusionError(t *testing.T) {
	excl := &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_room_slot_excl"}
	if !isExclusionError(excl, "bookings_") {
		t.Error("should match exclusion violation on a bookings constraint")
	}
	if isExclusionError(excl, "windows_") {
		t.Error("should not match the windows constraints")
	}
	if isExclusionError(errors.New("plain"), "bookings_") {
		t.Error("non-pg error should not match")
	}
}

func TestIsSerializationError(t *testing.T) {
	if !isSerializationError(&pgconn.PgError{Code: "40001"}) {
		t.Error("40001 is a serialization failure")
	}
	if isSerializationError(&pgconn.PgError{Code: "23505"}) {
		t.Error("23505 is not a serialization failure")
	}
	if isSerializationError(errors.New("plain")) {
		t.Error("non-pg error should not match")
	}
}

func TestWindowConflictError(t *testing.T) {
	id := uuid.New()
	err := error(&WindowConflictError{ConflictingID: id})

	if !errors.Is(err, ErrWindowConflict) {
		t.Error("WindowConflictError should match ErrWindowConflict")
	}

	var conflict *WindowConflictError
	if !errors.As(err, &conflict) {
		t.Fatal("errors.As should extract the typed conflict")
	}
	if conflict.ConflictingID != id {
		t.Errorf("ConflictingID = %s, want %s", conflict.ConflictingID, id)
	}
}
