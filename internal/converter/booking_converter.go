package converter

import (
	"clinic-scheduling-api/internal/delivery/dto"
	"clinic-scheduling-api/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingToResponse converts a Booking entity to a BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	response := &dto.BookingResponse{
		ID:             booking.ID,
		PatientID:      booking.PatientID,
		ProfessionalID: booking.ProfessionalID,
		RoomID:         booking.RoomID,
		WindowID:       booking.WindowID,
		Date:           booking.Date.Format("2006-01-02"),
		StartTime:      booking.StartTime,
		EndTime:        booking.EndTime,
		Status:         string(booking.Status),
		Notes:          booking.Notes,
		IsActive:       booking.Active(),
		CreatedAt:      booking.CreatedAt,
		UpdatedAt:      booking.UpdatedAt,
	}

	if booking.Patient.ID != uuid.Nil {
		response.Patient = UserToResponse(&booking.Patient)
	}
	if booking.Professional.ID != uuid.Nil {
		response.Professional = UserToResponse(&booking.Professional)
	}
	if booking.Room.ID != uuid.Nil {
		response.Room = RoomToResponse(&booking.Room)
	}
	if booking.Window != nil && booking.Window.ID != uuid.Nil {
		response.Window = WindowToResponse(booking.Window)
	}

	return response
}

// BookingsToResponses converts a slice of Booking entities
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = *BookingToResponse(&booking)
	}
	return responses
}
