package repository

import (
	"time"

	"clinic-scheduling-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilityWindowRepository interface {
	Create(db *gorm.DB, window *entity.AvailabilityWindow) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.AvailabilityWindow, error)
	FindAll(db *gorm.DB, filter *entity.WindowFilter) ([]entity.AvailabilityWindow, error)
	// FindConflictCandidates returns active windows on the given weekday that
	// share the professional or the room, excluding excludeID when non-nil.
	FindConflictCandidates(db *gorm.DB, professionalID, roomID uuid.UUID, day time.Weekday, excludeID *uuid.UUID) ([]entity.AvailabilityWindow, error)
	Update(db *gorm.DB, window *entity.AvailabilityWindow) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
