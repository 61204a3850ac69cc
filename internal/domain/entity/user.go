package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the single account table. Professional and patient specific fields
// live here as nullable columns rather than in side profile tables.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	FirstName string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Roles     RoleList  `gorm:"type:jsonb;not null" json:"roles"`

	// Patient fields
	DocumentID     *string    `gorm:"type:varchar(50);uniqueIndex" json:"document_id,omitempty"`
	BirthDate      *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	Phone          string     `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Address        string     `gorm:"type:varchar(255)" json:"address,omitempty"`
	HealthCoverage string     `gorm:"type:varchar(100)" json:"health_coverage,omitempty"`

	// Professional fields
	Specialty      string `gorm:"type:varchar(100)" json:"specialty,omitempty"`
	MedicalLicense string `gorm:"type:varchar(50)" json:"medical_license,omitempty"`

	IsActive  *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(role Role) bool {
	return u.Roles.Has(role)
}

// Active reports whether the account is active. A nil flag counts as active
// to match the column default.
func (u *User) Active() bool {
	return u.IsActive == nil || *u.IsActive
}
