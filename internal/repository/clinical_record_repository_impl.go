package repository

import (
	"errors"

	"clinic-scheduling-api/internal/domain/entity"
	domainRepo "clinic-scheduling-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type clinicalRecordRepository struct{}

func NewClinicalRecordRepository() domainRepo.ClinicalRecordRepository {
	return &clinicalRecordRepository{}
}

func (r *clinicalRecordRepository) Create(db *gorm.DB, record *entity.ClinicalRecord) error {
	return db.Create(record).Error
}

func (r *clinicalRecordRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.ClinicalRecord, error) {
	var record entity.ClinicalRecord
	err := db.Preload("Patient").Preload("Professional").Preload("Booking").
		Where("id = ?", id).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *clinicalRecordRepository) FindAll(db *gorm.DB, filter *entity.RecordFilter) ([]entity.ClinicalRecord, int64, error) {
	var records []entity.ClinicalRecord
	var total int64

	query := db.Model(&entity.ClinicalRecord{}).Where("is_active = ?", true)

	if filter != nil {
		if filter.PatientID != nil {
			query = query.Where("patient_id = ?", *filter.PatientID)
		}
		if filter.ProfessionalID != nil {
			query = query.Where("professional_id = ?", *filter.ProfessionalID)
		}
		if filter.BookingID != nil {
			query = query.Where("booking_id = ?", *filter.BookingID)
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
		Preload("Patient").Preload("Professional").Preload("Booking").
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (r *clinicalRecordRepository) Update(db *gorm.DB, record *entity.ClinicalRecord) error {
	return db.Omit("Patient", "Professional", "Booking").Save(record).Error
}
