package converter

import (
	"clinic-scheduling-api/internal/delivery/dto"
	"clinic-scheduling-api/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordToResponse converts a ClinicalRecord entity to a RecordResponse DTO
func RecordToResponse(record *entity.ClinicalRecord) *dto.RecordResponse {
	if record == nil {
		return nil
	}

	response := &dto.RecordResponse{
		ID:             record.ID,
		PatientID:      record.PatientID,
		ProfessionalID: record.ProfessionalID,
		BookingID:      record.BookingID,
		Diagnosis:      record.Diagnosis,
		Treatment:      record.Treatment,
		Notes:          record.Notes,
		IsActive:       record.Active(),
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}

	if record.Patient.ID != uuid.Nil {
		response.Patient = UserToResponse(&record.Patient)
	}
	if record.Professional.ID != uuid.Nil {
		response.Professional = UserToResponse(&record.Professional)
	}
	if record.Booking.ID != uuid.Nil {
		response.Booking = BookingToResponse(&record.Booking)
	}

	return response
}

// RecordsToResponses converts a slice of ClinicalRecord entities
func RecordsToResponses(records []entity.ClinicalRecord) []dto.RecordResponse {
	responses := make([]dto.RecordResponse, len(records))
	for i, record := range records {
		responses[i] = *RecordToResponse(&record)
	}
	return responses
}
