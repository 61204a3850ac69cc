package repository

import (
	"clinic-scheduling-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClinicalRecordRepository interface {
	Create(db *gorm.DB, record *entity.ClinicalRecord) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.ClinicalRecord, error)
	FindAll(db *gorm.DB, filter *entity.RecordFilter) ([]entity.ClinicalRecord, int64, error)
	Update(db *gorm.DB, record *entity.ClinicalRecord) error
}
