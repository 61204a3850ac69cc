package repository

import (
	"time"

	"clinic-scheduling-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	FindAll(db *gorm.DB, filter *entity.BookingFilter) ([]entity.Booking, int64, error)
	// FindOverlapCandidates returns active bookings on the given date that
	// share the room or the professional, excluding excludeID when non-nil.
	FindOverlapCandidates(db *gorm.DB, roomID, professionalID uuid.UUID, date time.Time, excludeID *uuid.UUID) ([]entity.Booking, error)
	Update(db *gorm.DB, booking *entity.Booking) error
}
