package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	FirstName      string `json:"first_name" validate:"required,max=100"`
	LastName       string `json:"last_name" validate:"required,max=100"`
	DocumentID     string `json:"document_id" validate:"omitempty,max=50"`
	BirthDate      string `json:"birth_date" validate:"omitempty"` // Format: YYYY-MM-DD
	Phone          string `json:"phone" validate:"omitempty,max=30"`
	Address        string `json:"address" validate:"omitempty,max=255"`
	HealthCoverage string `json:"health_coverage" validate:"omitempty,max=100"`
}

// CreateUserRequest is the administrative variant of registration: it may
// assign any role set and professional credentials.
type CreateUserRequest struct {
	Email          string   `json:"email" validate:"required,email"`
	Password       string   `json:"password" validate:"required,min=8"`
	FirstName      string   `json:"first_name" validate:"required,max=100"`
	LastName       string   `json:"last_name" validate:"required,max=100"`
	Roles          []string `json:"roles" validate:"required,min=1,dive,oneof=PACIENTE PROFESIONAL ADMINISTRATIVO"`
	DocumentID     string   `json:"document_id" validate:"omitempty,max=50"`
	BirthDate      string   `json:"birth_date" validate:"omitempty"` // Format: YYYY-MM-DD
	Phone          string   `json:"phone" validate:"omitempty,max=30"`
	Address        string   `json:"address" validate:"omitempty,max=255"`
	HealthCoverage string   `json:"health_coverage" validate:"omitempty,max=100"`
	Specialty      string   `json:"specialty" validate:"omitempty,max=100"`
	MedicalLicense string   `json:"medical_license" validate:"omitempty,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Response DTOs

type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Roles          []string  `json:"roles"`
	DocumentID     string    `json:"document_id,omitempty"`
	BirthDate      string    `json:"birth_date,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Address        string    `json:"address,omitempty"`
	HealthCoverage string    `json:"health_coverage,omitempty"`
	Specialty      string    `json:"specialty,omitempty"`
	MedicalLicense string    `json:"medical_license,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
