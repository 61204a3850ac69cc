package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingFilter is a domain-level filter for querying bookings.
// Used by the repository layer to avoid coupling with delivery DTOs.
type BookingFilter struct {
	PatientID      *uuid.UUID
	ProfessionalID *uuid.UUID
	RoomID         *uuid.UUID
	Date           *time.Time
	Limit          int
	Offset         int
}

// WindowFilter is a domain-level filter for querying availability windows.
type WindowFilter struct {
	ProfessionalID *uuid.UUID
	RoomID         *uuid.UUID
	DayOfWeek      *time.Weekday
	ActiveOnly     bool
}

// RecordFilter is a domain-level filter for querying clinical records.
type RecordFilter struct {
	PatientID      *uuid.UUID
	ProfessionalID *uuid.UUID
	BookingID      *uuid.UUID
	Limit          int
	Offset         int
}
