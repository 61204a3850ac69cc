package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateSiteRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Address string `json:"address" validate:"required,max=255"`
	City    string `json:"city" validate:"required,max=100"`
}

type UpdateSiteRequest struct {
	Name     string `json:"name" validate:"omitempty,max=100"`
	Address  string `json:"address" validate:"omitempty,max=255"`
	City     string `json:"city" validate:"omitempty,max=100"`
	IsActive *bool  `json:"is_active" validate:"omitempty"`
}

type CreateRoomRequest struct {
	Name   string    `json:"name" validate:"required,max=100"`
	SiteID uuid.UUID `json:"site_id" validate:"required"`
}

type UpdateRoomRequest struct {
	Name        string `json:"name" validate:"omitempty,max=100"`
	IsAvailable *bool  `json:"is_available" validate:"omitempty"`
}

// Response DTOs

type SiteResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SiteListResponse struct {
	Sites []SiteResponse `json:"sites"`
	Total int            `json:"total"`
}

type RoomResponse struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	SiteID      uuid.UUID     `json:"site_id"`
	Site        *SiteResponse `json:"site,omitempty"`
	IsAvailable bool          `json:"is_available"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Total int            `json:"total"`
}
