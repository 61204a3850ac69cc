package entity

import (
	"time"

	"github.com/google/uuid"
)

// Site (sede) is a physical location grouping rooms.
type Site struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Address   string    `gorm:"type:varchar(255);not null" json:"address"`
	City      string    `gorm:"type:varchar(100);not null" json:"city"`
	IsActive  *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Rooms []Room `gorm:"foreignKey:SiteID" json:"rooms,omitempty"`
}

func (Site) TableName() string {
	return "sites"
}

// Active reports whether the site is active.
func (s *Site) Active() bool {
	return s.IsActive == nil || *s.IsActive
}
