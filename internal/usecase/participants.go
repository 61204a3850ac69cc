package usecase

import (
	"errors"

	"clinic-scheduling-api/internal/domain/entity"
	"clinic-scheduling-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound      = errors.New("patient not found")
	ErrProfessionalNotFound = errors.New("professional not found")
	ErrRoomNotFound         = errors.New("room not found")
	ErrNotAPatient          = errors.New("user does not hold the PACIENTE role")
	ErrNotAProfessional     = errors.New("user does not hold the PROFESIONAL role")
)

// resolvePatient loads an active user and checks the patient role. A missing
// or inactive user is NotFound; a present user without the role is a role
// error, kept distinct for the caller's error surface.
func resolvePatient(db *gorm.DB, users repository.UserRepository, id uuid.UUID) (*entity.User, error) {
	user, err := users.FindByID(db, id)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active() {
		return nil, ErrPatientNotFound
	}
	if !user.HasRole(entity.RolePatient) {
		return nil, ErrNotAPatient
	}
	return user, nil
}

// resolveProfessional loads an active user and checks the professional role.
func resolveProfessional(db *gorm.DB, users repository.UserRepository, id uuid.UUID) (*entity.User, error) {
	user, err := users.FindByID(db, id)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active() {
		return nil, ErrProfessionalNotFound
	}
	if !user.HasRole(entity.RoleProfessional) {
		return nil, ErrNotAProfessional
	}
	return user, nil
}

// resolveRoom loads a room; missing or unavailable rooms read as NotFound.
func resolveRoom(db *gorm.DB, rooms repository.RoomRepository, id uuid.UUID) (*entity.Room, error) {
	room, err := rooms.FindByID(db, id)
	if err != nil {
		return nil, err
	}
	if room == nil || !room.Available() {
		return nil, ErrRoomNotFound
	}
	return room, nil
}
