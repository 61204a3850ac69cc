package converter

import (
	"clinic-scheduling-api/internal/delivery/dto"
	"clinic-scheduling-api/internal/domain/entity"
)

// UserToResponse converts a User entity to a UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	roles := make([]string, len(user.Roles))
	for i, r := range user.Roles {
		roles[i] = string(r)
	}

	response := &dto.UserResponse{
		ID:             user.ID,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Roles:          roles,
		Phone:          user.Phone,
		Address:        user.Address,
		HealthCoverage: user.HealthCoverage,
		Specialty:      user.Specialty,
		MedicalLicense: user.MedicalLicense,
		IsActive:       user.Active(),
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}

	if user.DocumentID != nil {
		response.DocumentID = *user.DocumentID
	}
	if user.BirthDate != nil {
		response.BirthDate = user.BirthDate.Format("2006-01-02")
	}

	return response
}
