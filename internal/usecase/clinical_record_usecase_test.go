package usecase

import (
	"errors"
	"testing"

	"clinic-scheduling-api/internal/domain/entity"

	"github.com/google/uuid"
)

func TestCheckRecordBooking(t *testing.T) {
	patientID := uuid.New()
	professionalID := uuid.New()

	confirmed := func(status entity.BookingStatus, active bool) *entity.Booking {
		isActive := active
		return &entity.Booking{
			PatientID:      patientID,
			ProfessionalID: professionalID,
			Status:         status,
			IsActive:       &isActive,
		}
	}

	tests := []struct {
		name           string
		booking        *entity.Booking
		patientID      uuid.UUID
		professionalID uuid.UUID
		want           error
	}{
		{"confirmed and matching", confirmed(entity.BookingStatusConfirmed, true), patientID, professionalID, nil},
		{"missing booking", nil, patientID, professionalID, ErrBookingNotFound},
		{"inactive booking", confirmed(entity.BookingStatusConfirmed, false), patientID, professionalID, ErrBookingNotFound},
		{"still scheduled", confirmed(entity.BookingStatusScheduled, true), patientID, professionalID, ErrBookingNotConfirmed},
		{"already completed", confirmed(entity.BookingStatusCompleted, true), patientID, professionalID, ErrBookingNotConfirmed},
		{"cancelled", confirmed(entity.BookingStatusCancelled, true), patientID, professionalID, ErrBookingNotConfirmed},
		{"wrong patient", confirmed(entity.BookingStatusConfirmed, true), uuid.New(), professionalID, ErrRecordMismatch},
		{"wrong professional", confirmed(entity.BookingStatusConfirmed, true), patientID, uuid.New(), ErrRecordMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkRecordBooking(tt.booking, tt.patientID, tt.professionalID)
			if !errors.Is(err, tt.want) {
				t.Errorf("checkRecordBooking() = %v, want %v", err, tt.want)
			}
		})
	}
}
