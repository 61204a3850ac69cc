package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateWindowRequest struct {
	ProfessionalID uuid.UUID `json:"professional_id" validate:"required"`
	RoomID         uuid.UUID `json:"room_id" validate:"required"`
	DayOfWeek      string    `json:"day_of_week" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime      string    `json:"start_time" validate:"required,datetime=15:04"`
	EndTime        string    `json:"end_time" validate:"required,datetime=15:04"`
}

type UpdateWindowRequest struct {
	ProfessionalID uuid.UUID `json:"professional_id" validate:"omitempty"`
	RoomID         uuid.UUID `json:"room_id" validate:"omitempty"`
	DayOfWeek      string    `json:"day_of_week" validate:"omitempty,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime      string    `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime        string    `json:"end_time" validate:"omitempty,datetime=15:04"`
}

type WindowQuery struct {
	ProfessionalID *uuid.UUID
	RoomID         *uuid.UUID
	DayOfWeek      string
	ActiveOnly     bool
}

// Response DTOs

type WindowResponse struct {
	ID             uuid.UUID     `json:"id"`
	ProfessionalID uuid.UUID     `json:"professional_id"`
	Professional   *UserResponse `json:"professional,omitempty"`
	RoomID         uuid.UUID     `json:"room_id"`
	Room           *RoomResponse `json:"room,omitempty"`
	DayOfWeek      string        `json:"day_of_week"`
	StartTime      string        `json:"start_time"`
	EndTime        string        `json:"end_time"`
	IsActive       bool          `json:"is_active"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type WindowListResponse struct {
	Windows []WindowResponse `json:"windows"`
	Total   int              `json:"total"`
}
