package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OperatingHour is one weekday's opening window for a restaurant.
// day_of_week runs 0 (Sunday) through 6; times are "HH:MM" strings.
type OperatingHour struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index" json:"restaurant_id"`
	DayOfWeek    int       `gorm:"not null" json:"day_of_week"`
	StartTime    string    `gorm:"size:5" json:"start_time,omitempty"`
	EndTime      string    `gorm:"size:5" json:"end_time,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
}

func (o *OperatingHour) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
