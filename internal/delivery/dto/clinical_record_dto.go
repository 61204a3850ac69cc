package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateRecordRequest struct {
	PatientID      uuid.UUID `json:"patient_id" validate:"required"`
	ProfessionalID uuid.UUID `json:"professional_id" validate:"required"`
	BookingID      uuid.UUID `json:"booking_id" validate:"required"`
	Diagnosis      string    `json:"diagnosis" validate:"required"`
	Treatment      string    `json:"treatment" validate:"omitempty"`
	Notes          string    `json:"notes" validate:"omitempty"`
}

type UpdateRecordRequest struct {
	Diagnosis string `json:"diagnosis" validate:"omitempty"`
	Treatment string `json:"treatment" validate:"omitempty"`
	Notes     string `json:"notes" validate:"omitempty"`
}

type RecordQuery struct {
	PatientID      *uuid.UUID
	ProfessionalID *uuid.UUID
	BookingID      *uuid.UUID
	Limit          int
	Offset         int
}

// Response DTOs

type RecordResponse struct {
	ID             uuid.UUID        `json:"id"`
	PatientID      uuid.UUID        `json:"patient_id"`
	Patient        *UserResponse    `json:"patient,omitempty"`
	ProfessionalID uuid.UUID        `json:"professional_id"`
	Professional   *UserResponse    `json:"professional,omitempty"`
	BookingID      uuid.UUID        `json:"booking_id"`
	Booking        *BookingResponse `json:"booking,omitempty"`
	Diagnosis      string           `json:"diagnosis"`
	Treatment      string           `json:"treatment,omitempty"`
	Notes          string           `json:"notes,omitempty"`
	IsActive       bool             `json:"is_active"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

type RecordListResponse struct {
	Records []RecordResponse `json:"records"`
	Total   int64            `json:"total"`
}
