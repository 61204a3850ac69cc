package converter

import (
	"clinic-scheduling-api/internal/delivery/dto"
	"clinic-scheduling-api/internal/domain/entity"

	"github.com/google/uuid"
)

// WindowToResponse converts an AvailabilityWindow entity to a WindowResponse DTO
func WindowToResponse(window *entity.AvailabilityWindow) *dto.WindowResponse {
	if window == nil {
		return nil
	}

	response := &dto.WindowResponse{
		ID:             window.ID,
		ProfessionalID: window.ProfessionalID,
		RoomID:         window.RoomID,
		DayOfWeek:      window.DayOfWeek.String(),
		StartTime:      window.StartTime,
		EndTime:        window.EndTime,
		IsActive:       window.Active(),
		CreatedAt:      window.CreatedAt,
		UpdatedAt:      window.UpdatedAt,
	}

	if window.Professional.ID != uuid.Nil {
		response.Professional = UserToResponse(&window.Professional)
	}
	if window.Room.ID != uuid.Nil {
		response.Room = RoomToResponse(&window.Room)
	}

	return response
}

// WindowsToResponses converts a slice of AvailabilityWindow entities
func WindowsToResponses(windows []entity.AvailabilityWindow) []dto.WindowResponse {
	responses := make([]dto.WindowResponse, len(windows))
	for i, window := range windows {
		responses[i] = *WindowToResponse(&window)
	}
	return responses
}
