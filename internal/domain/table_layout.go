package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TableLayout struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index" json:"restaurant_id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Capacity     int       `json:"capacity"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Restaurant   *Restaurant   `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	Reservations []Reservation `gorm:"foreignKey:TableLayoutID;constraint:OnDelete:CASCADE" json:"reservation,omitempty"`

	Counts *TableLayoutCounts `gorm:"-" json:"_count,omitempty"`
}

type TableLayoutCounts struct {
	Reservation *int64 `json:"reservation,omitempty"`
}

func (t *TableLayout) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
