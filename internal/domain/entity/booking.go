package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle state of a booking. Values keep the
// original clinical vocabulary stored in the database.
type BookingStatus string

const (
	BookingStatusScheduled BookingStatus = "PROGRAMADA"
	BookingStatusConfirmed BookingStatus = "CONFIRMADA"
	BookingStatusCancelled BookingStatus = "CANCELADA"
	BookingStatusCompleted BookingStatus = "COMPLETADA"
)

// ValidBookingStatus reports whether s is a known status value.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusScheduled, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// statusTransitions is the allowed state machine:
// Scheduled -> Confirmed|Cancelled, Confirmed -> Completed|Cancelled.
// Cancelled and Completed are terminal.
var statusTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusScheduled: {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled},
}

// Booking is a concrete date-bound reservation of a room and a professional
// by a patient. Among active bookings sharing the room or the professional
// on the same date, no two intervals may overlap.
type Booking struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"patient_id"`
	ProfessionalID uuid.UUID     `gorm:"type:uuid;not null;index" json:"professional_id"`
	RoomID         uuid.UUID     `gorm:"type:uuid;not null;index" json:"room_id"`
	WindowID       *uuid.UUID    `gorm:"type:uuid;index" json:"window_id,omitempty"`
	Date           time.Time     `gorm:"type:date;not null;index" json:"date"`
	StartTime      string        `gorm:"type:time;not null" json:"start_time"`
	EndTime        string        `gorm:"type:time;not null" json:"end_time"`
	Status         BookingStatus `gorm:"type:varchar(20);not null;default:'PROGRAMADA';index" json:"status"`
	Notes          string        `gorm:"type:text" json:"notes,omitempty"`
	IsActive       *bool         `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt      time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient      User                `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Professional User                `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
	Room         Room                `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Window       *AvailabilityWindow `gorm:"foreignKey:WindowID" json:"window,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// Active reports whether the booking participates in overlap and visibility
// computations.
func (b *Booking) Active() bool {
	return b.IsActive == nil || *b.IsActive
}

// IsConfirmed checks if the booking has been confirmed.
func (b *Booking) IsConfirmed() bool {
	return b.Status == BookingStatusConfirmed
}

// CanTransitionTo reports whether the status state machine allows moving to
// next from the current status.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range statusTransitions[b.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}
