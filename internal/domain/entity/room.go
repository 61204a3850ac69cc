package entity

import (
	"time"

	"github.com/google/uuid"
)

// Room (consultorio) is a bookable physical room within a site.
type Room struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	SiteID      uuid.UUID `gorm:"type:uuid;not null;index" json:"site_id"`
	IsAvailable *bool     `gorm:"not null;default:true;index" json:"is_available"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Site Site `gorm:"foreignKey:SiteID" json:"site,omitempty"`
}

func (Room) TableName() string {
	return "rooms"
}

// Available reports whether the room can take bookings.
func (r *Room) Available() bool {
	return r.IsAvailable == nil || *r.IsAvailable
}
