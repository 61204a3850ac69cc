package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBookingRequest struct {
	PatientID      uuid.UUID  `json:"patient_id" validate:"required"`
	ProfessionalID uuid.UUID  `json:"professional_id" validate:"required"`
	RoomID         uuid.UUID  `json:"room_id" validate:"required"`
	WindowID       *uuid.UUID `json:"window_id" validate:"omitempty"`
	Date           string     `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime      string     `json:"start_time" validate:"required,datetime=15:04"`
	EndTime        string     `json:"end_time" validate:"required,datetime=15:04"`
	Status         string     `json:"status" validate:"omitempty,oneof=PROGRAMADA CONFIRMADA"`
	Notes          string     `json:"notes" validate:"omitempty"`
}

type UpdateBookingRequest struct {
	Date      string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"omitempty,datetime=15:04"`
	Status    string `json:"status" validate:"omitempty,oneof=PROGRAMADA CONFIRMADA CANCELADA COMPLETADA"`
	Notes     string `json:"notes" validate:"omitempty"`
}

type BookingQuery struct {
	PatientID      *uuid.UUID
	ProfessionalID *uuid.UUID
	RoomID         *uuid.UUID
	Date           string // Format: YYYY-MM-DD
	Limit          int
	Offset         int
}

// Response DTOs

type BookingResponse struct {
	ID             uuid.UUID       `json:"id"`
	PatientID      uuid.UUID       `json:"patient_id"`
	Patient        *UserResponse   `json:"patient,omitempty"`
	ProfessionalID uuid.UUID       `json:"professional_id"`
	Professional   *UserResponse   `json:"professional,omitempty"`
	RoomID         uuid.UUID       `json:"room_id"`
	Room           *RoomResponse   `json:"room,omitempty"`
	WindowID       *uuid.UUID      `json:"window_id,omitempty"`
	Window         *WindowResponse `json:"window,omitempty"`
	Date           string          `json:"date"`
	StartTime      string          `json:"start_time"`
	EndTime        string          `json:"end_time"`
	Status         string          `json:"status"`
	Notes          string          `json:"notes,omitempty"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int64             `json:"total"`
}
