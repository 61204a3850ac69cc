package converter

import (
	"clinic-scheduling-api/internal/delivery/dto"
	"clinic-scheduling-api/internal/domain/entity"

	"github.com/google/uuid"
)

// SiteToResponse converts a Site entity to a SiteResponse DTO
func SiteToResponse(site *entity.Site) *dto.SiteResponse {
	if site == nil {
		return nil
	}
	return &dto.SiteResponse{
		ID:        site.ID,
		Name:      site.Name,
		Address:   site.Address,
		City:      site.City,
		IsActive:  site.Active(),
		CreatedAt: site.CreatedAt,
		UpdatedAt: site.UpdatedAt,
	}
}

// SitesToResponses converts a slice of Site entities
func SitesToResponses(sites []entity.Site) []dto.SiteResponse {
	responses := make([]dto.SiteResponse, len(sites))
	for i, site := range sites {
		responses[i] = *SiteToResponse(&site)
	}
	return responses
}

// RoomToResponse converts a Room entity to a RoomResponse DTO
func RoomToResponse(room *entity.Room) *dto.RoomResponse {
	if room == nil {
		return nil
	}

	response := &dto.RoomResponse{
		ID:          room.ID,
		Name:        room.Name,
		SiteID:      room.SiteID,
		IsAvailable: room.Available(),
		CreatedAt:   room.CreatedAt,
		UpdatedAt:   room.UpdatedAt,
	}

	if room.Site.ID != uuid.Nil {
		response.Site = SiteToResponse(&room.Site)
	}

	return response
}

// RoomsToResponses converts a slice of Room entities
func RoomsToResponses(rooms []entity.Room) []dto.RoomResponse {
	responses := make([]dto.RoomResponse, len(rooms))
	for i, room := range rooms {
		responses[i] = *RoomToResponse(&room)
	}
	return responses
}
