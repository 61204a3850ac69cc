package usecase

import (
	"errors"
	"hash/fnv"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Advisory lock keys serialize the scan-then-insert sequence per
// (room, date) and (professional, date) tuple. Keys are taken in sorted
// order so two writers touching the same pair cannot deadlock.

func advisoryKey(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// slotLockKeys returns the lock keys guarding a booking slot.
func slotLockKeys(roomID, professionalID uuid.UUID, date time.Time) []int64 {
	day := date.Format("2006-01-02")
	keys := []int64{
		advisoryKey("booking:room:" + roomID.String() + ":" + day),
		advisoryKey("booking:professional:" + professionalID.String() + ":" + day),
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// windowLockKeys returns the lock keys guarding a weekly availability window.
func windowLockKeys(roomID, professionalID uuid.UUID, day time.Weekday) []int64 {
	keys := []int64{
		advisoryKey("window:room:" + roomID.String() + ":" + day.String()),
		advisoryKey("window:professional:" + professionalID.String() + ":" + day.String()),
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// acquireAdvisoryLocks takes transaction-scoped advisory locks; they are
// released automatically at commit or rollback.
func acquireAdvisoryLocks(tx *gorm.DB, keys []int64) error {
	for _, key := range keys {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", key).Error; err != nil {
			return err
		}
	}
	return nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isExclusionError checks if the error is a PostgreSQL exclusion constraint
// violation containing the specified constraint name
func isExclusionError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23P01 = exclusion_violation
		if pgErr.Code == "23P01" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isSerializationError checks for a serializable transaction conflict
func isSerializationError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 40001 = serialization_failure
		return pgErr.Code == "40001"
	}
	return false
}
