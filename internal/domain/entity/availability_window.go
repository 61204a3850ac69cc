package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrUnknownWeekday indicates a day name outside Sunday..Saturday.
var ErrUnknownWeekday = errors.New("unknown day of week")

// AvailabilityWindow is a weekly recurring interval in which a professional
// attends a room. Among active windows sharing the professional or the room
// on the same weekday, no two intervals may overlap.
type AvailabilityWindow struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProfessionalID uuid.UUID    `gorm:"type:uuid;not null;index" json:"professional_id"`
	RoomID         uuid.UUID    `gorm:"type:uuid;not null;index" json:"room_id"`
	DayOfWeek      time.Weekday `gorm:"type:smallint;not null" json:"day_of_week"`
	StartTime      string       `gorm:"type:time;not null" json:"start_time"`
	EndTime        string       `gorm:"type:time;not null" json:"end_time"`
	IsActive       *bool        `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt      time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Professional User `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
	Room         Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

func (AvailabilityWindow) TableName() string {
	return "availability_windows"
}

// Active reports whether the window participates in conflict checks.
func (w *AvailabilityWindow) Active() bool {
	return w.IsActive == nil || *w.IsActive
}

var weekdayNames = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// ParseWeekday maps a day name to its weekday value.
func ParseWeekday(s string) (time.Weekday, error) {
	day, ok := weekdayNames[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, s)
	}
	return day, nil
}
