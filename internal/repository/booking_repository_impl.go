package repository

import (
	"errors"
	"time"

	"clinic-scheduling-api/internal/domain/entity"
	domainRepo "clinic-scheduling-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("Patient").Preload("Professional").Preload("Room").Preload("Window").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindAll(db *gorm.DB, filter *entity.BookingFilter) ([]entity.Booking, int64, error) {
	var bookings []entity.Booking
	var total int64

	query := db.Model(&entity.Booking{}).Where("is_active = ?", true)

	if filter != nil {
		if filter.PatientID != nil {
			query = query.Where("patient_id = ?", *filter.PatientID)
		}
		if filter.ProfessionalID != nil {
			query = query.Where("professional_id = ?", *filter.ProfessionalID)
		}
		if filter.RoomID != nil {
			query = query.Where("room_id = ?", *filter.RoomID)
		}
		if filter.Date != nil {
			query = query.Where("date = ?", filter.Date.Format("2006-01-02"))
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter != nil {
		if filter.Limit > 0 {
			query = query.Limit(filter.Limit)
		}
		if filter.Offset > 0 {
			query = query.Offset(filter.Offset)
		}
	}

	err := query.
		Preload("Patient").Preload("Professional").Preload("Room").
		Order("date ASC, start_time ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *bookingRepository) FindOverlapCandidates(db *gorm.DB, roomID, professionalID uuid.UUID, date time.Time, excludeID *uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	query := db.
		Where("(room_id = ? OR professional_id = ?)", roomID, professionalID).
		Where("date = ?", date.Format("2006-01-02")).
		Where("is_active = ?", true)

	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) Update(db *gorm.DB, booking *entity.Booking) error {
	return db.Omit("Patient", "Professional", "Room", "Window").Save(booking).Error
}
