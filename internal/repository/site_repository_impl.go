package repository

import (
	"errors"

	"clinic-scheduling-api/internal/domain/entity"
	domainRepo "clinic-scheduling-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type siteRepository struct{}

func NewSiteRepository() domainRepo.SiteRepository {
	return &siteRepository{}
}

func (r *siteRepository) Create(db *gorm.DB, site *entity.Site) error {
	return db.Create(site).Error
}

func (r *siteRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Site, error) {
	var site entity.Site
	err := db.Where("id = ?", id).First(&site).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &site, nil
}

func (r *siteRepository) FindAll(db *gorm.DB, activeOnly bool) ([]entity.Site, error) {
	var sites []entity.Site
	query := db.Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&sites).Error; err != nil {
		return nil, err
	}
	return sites, nil
}

func (r *siteRepository) Update(db *gorm.DB, site *entity.Site) error {
	return db.Omit("Rooms").Save(site).Error
}

type roomRepository struct{}

func NewRoomRepository() domainRepo.RoomRepository {
	return &roomRepository{}
}

func (r *roomRepository) Create(db *gorm.DB, room *entity.Room) error {
	return db.Create(room).Error
}

func (r *roomRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Room, error) {
	var room entity.Room
	err := db.Preload("Site").Where("id = ?", id).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindAll(db *gorm.DB, siteID *uuid.UUID, availableOnly bool) ([]entity.Room, error) {
	var rooms []entity.Room
	query := db.Preload("Site").Order("name ASC")
	if siteID != nil {
		query = query.Where("site_id = ?", *siteID)
	}
	if availableOnly {
		query = query.Where("is_available = ?", true)
	}
	if err := query.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) Update(db *gorm.DB, room *entity.Room) error {
	return db.Omit("Site").Save(room).Error
}
