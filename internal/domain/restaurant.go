package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Restaurant struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Image       string    `gorm:"size:512" json:"image,omitempty"`
	Location    string    `gorm:"size:255;not null" json:"location"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations, serialized only when expanded.
	User           *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	OperatingHours []OperatingHour `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"operating_hour,omitempty"`
	Reservations   []Reservation   `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"reservation,omitempty"`
	TableLayouts   []TableLayout   `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"table_layout,omitempty"`

	Counts *RestaurantCounts `gorm:"-" json:"_count,omitempty"`
}

// RestaurantCounts carries the read-only relation aggregates for list views.
type RestaurantCounts struct {
	OperatingHour *int64 `json:"operating_hour,omitempty"`
	Reservation   *int64 `json:"reservation,omitempty"`
	TableLayout   *int64 `json:"table_layout,omitempty"`
}

func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
