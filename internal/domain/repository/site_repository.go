package repository

import (
	"clinic-scheduling-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SiteRepository interface {
	Create(db *gorm.DB, site *entity.Site) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Site, error)
	FindAll(db *gorm.DB, activeOnly bool) ([]entity.Site, error)
	Update(db *gorm.DB, site *entity.Site) error
}

type RoomRepository interface {
	Create(db *gorm.DB, room *entity.Room) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Room, error)
	FindAll(db *gorm.DB, siteID *uuid.UUID, availableOnly bool) ([]entity.Room, error)
	Update(db *gorm.DB, room *entity.Room) error
}
