package usecase

import (
	"errors"
	"io"
	"testing"
	"time"

	"clinic-scheduling-api/internal/domain/entity"
	"clinic-scheduling-api/pkg/interval"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type stubWindowRepo struct {
	windows map[uuid.UUID]*entity.AvailabilityWindow
}

func (s *stubWindowRepo) Create(db *gorm.DB, window *entity.AvailabilityWindow) error { return nil }

func (s *stubWindowRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.AvailabilityWindow, error) {
	return s.windows[id], nil
}

func (s *stubWindowRepo) FindAll(db *gorm.DB, filter *entity.WindowFilter) ([]entity.AvailabilityWindow, error) {
	return nil, nil
}

func (s *stubWindowRepo) FindConflictCandidates(db *gorm.DB, professionalID, roomID uuid.UUID, day time.Weekday, excludeID *uuid.UUID) ([]entity.AvailabilityWindow, error) {
	return nil, nil
}

func (s *stubWindowRepo) Update(db *gorm.DB, window *entity.AvailabilityWindow) error { return nil }

func (s *stubWindowRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) { return 0, nil }

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// dateOn returns some concrete date falling on the given weekday.
func dateOn(day time.Weekday) time.Time {
	d := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != day {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func mustSpan(t *testing.T, start, end string) interval.Span {
	t.Helper()
	span, err := interval.NewSpan(start, end)
	if err != nil {
		t.Fatalf("NewSpan(%q, %q): %v", start, end, err)
	}
	return span
}

func TestCheckWindowContainment(t *testing.T) {
	professionalID := uuid.New()
	roomID := uuid.New()
	windowID := uuid.New()
	inactiveID := uuid.New()

	inactive := false
	repo := &stubWindowRepo{windows: map[uuid.UUID]*entity.AvailabilityWindow{
		windowID: {
			ID:             windowID,
			ProfessionalID: professionalID,
			RoomID:         roomID,
			DayOfWeek:      time.Monday,
			StartTime:      "09:00",
			EndTime:        "17:00",
		},
		inactiveID: {
			ID:             inactiveID,
			ProfessionalID: professionalID,
			RoomID:         roomID,
			DayOfWeek:      time.Monday,
			StartTime:      "09:00",
			EndTime:        "17:00",
			IsActive:       &inactive,
		},
	}}
	u := &bookingUsecase{log: quietLogger(), windowRepo: repo}

	tests := []struct {
		name           string
		windowID       uuid.UUID
		professionalID uuid.UUID
		roomID         uuid.UUID
		date           time.Time
		start, end     string
		want           error
	}{
		{"slot inside window", windowID, professionalID, roomID, dateOn(time.Monday), "10:00", "11:00", nil},
		{"slot equals window", windowID, professionalID, roomID, dateOn(time.Monday), "09:00", "17:00", nil},
		{"weekday mismatch", windowID, professionalID, roomID, dateOn(time.Tuesday), "10:00", "11:00", ErrOutsideAvailability},
		{"spills past window end", windowID, professionalID, roomID, dateOn(time.Monday), "16:30", "17:30", ErrOutsideAvailability},
		{"starts before window", windowID, professionalID, roomID, dateOn(time.Monday), "08:30", "09:30", ErrOutsideAvailability},
		{"different professional", windowID, uuid.New(), roomID, dateOn(time.Monday), "10:00", "11:00", ErrOutsideAvailability},
		{"different room", windowID, professionalID, uuid.New(), dateOn(time.Monday), "10:00", "11:00", ErrOutsideAvailability},
		{"inactive window", inactiveID, professionalID, roomID, dateOn(time.Monday), "10:00", "11:00", ErrWindowNotFound},
		{"unknown window", uuid.New(), professionalID, roomID, dateOn(time.Monday), "10:00", "11:00", ErrWindowNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := mustSpan(t, tt.start, tt.end)
			err := u.checkWindowContainment(nil, tt.windowID, tt.professionalID, tt.roomID, tt.date, span)
			if !errors.Is(err, tt.want) {
				t.Errorf("checkWindowContainment() = %v, want %v", err, tt.want)
			}
		})
	}
}
