package repository

import (
	"errors"
	"time"

	"clinic-scheduling-api/internal/domain/entity"
	domainRepo "clinic-scheduling-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type availabilityWindowRepository struct{}

func NewAvailabilityWindowRepository() domainRepo.AvailabilityWindowRepository {
	return &availabilityWindowRepository{}
}

func (r *availabilityWindowRepository) Create(db *gorm.DB, window *entity.AvailabilityWindow) error {
	return db.Create(window).Error
}

func (r *availabilityWindowRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.AvailabilityWindow, error) {
	var window entity.AvailabilityWindow
	err := db.Preload("Professional").Preload("Room").Where("id = ?", id).First(&window).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &window, nil
}

func (r *availabilityWindowRepository) FindAll(db *gorm.DB, filter *entity.WindowFilter) ([]entity.AvailabilityWindow, error) {
	var windows []entity.AvailabilityWindow
	query := db.Preload("Professional").Preload("Room").
		Order("day_of_week ASC, start_time ASC")

	if filter != nil {
		if filter.ProfessionalID != nil {
			query = query.Where("professional_id = ?", *filter.ProfessionalID)
		}
		if filter.RoomID != nil {
			query = query.Where("room_id = ?", *filter.RoomID)
		}
		if filter.DayOfWeek != nil {
			query = query.Where("day_of_week = ?", int(*filter.DayOfWeek))
		}
		if filter.ActiveOnly {
			query = query.Where("is_active = ?", true)
		}
	}

	if err := query.Find(&windows).Error; err != nil {
		return nil, err
	}
	return windows, nil
}

func (r *availabilityWindowRepository) FindConflictCandidates(db *gorm.DB, professionalID, roomID uuid.UUID, day time.Weekday, excludeID *uuid.UUID) ([]entity.AvailabilityWindow, error) {
	var windows []entity.AvailabilityWindow
	query := db.
		Where("(professional_id = ? OR room_id = ?)", professionalID, roomID).
		Where("day_of_week = ?", int(day)).
		Where("is_active = ?", true)

	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	if err := query.Find(&windows).Error; err != nil {
		return nil, err
	}
	return windows, nil
}

func (r *availabilityWindowRepository) Update(db *gorm.DB, window *entity.AvailabilityWindow) error {
	return db.Omit("Professional", "Room").Save(window).Error
}

func (r *availabilityWindowRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.AvailabilityWindow{})
	return result.RowsAffected, result.Error
}
