package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClinicalRecord is a medical record attached to a confirmed booking. Its
// patient and professional must match the booking's at creation time.
type ClinicalRecord struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID      uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;not null;index" json:"professional_id"`
	BookingID      uuid.UUID `gorm:"type:uuid;not null;index" json:"booking_id"`
	Diagnosis      string    `gorm:"type:text;not null" json:"diagnosis"`
	Treatment      string    `gorm:"type:text" json:"treatment,omitempty"`
	Notes          string    `gorm:"type:text" json:"notes,omitempty"`
	IsActive       *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient      User    `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Professional User    `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
	Booking      Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
}

func (ClinicalRecord) TableName() string {
	return "clinical_records"
}

// Active reports whether the record is visible.
func (r *ClinicalRecord) Active() bool {
	return r.IsActive == nil || *r.IsActive
}
