package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reservation status values used by the admin screens. The column is not
// constrained to these; unknown values round-trip untouched.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// Reservation holds a table for a customer. Date is "2006-01-02", Time is
// "HH:MM". The unique index keeps one reservation per table and slot.
type Reservation struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID     uuid.UUID `gorm:"type:uuid;index" json:"customer_id"`
	RestaurantID   uuid.UUID `gorm:"type:uuid;index" json:"restaurant_id"`
	TableLayoutID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_no_double_booking" json:"table_layout_id"`
	Date           string    `gorm:"size:10;uniqueIndex:idx_no_double_booking" json:"date,omitempty"`
	Time           string    `gorm:"size:5;uniqueIndex:idx_no_double_booking" json:"time,omitempty"`
	NumberOfGuests int       `json:"number_of_guests"`
	Status         string    `gorm:"size:64;default:'pending'" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	User        *User        `gorm:"foreignKey:CustomerID" json:"user,omitempty"`
	Restaurant  *Restaurant  `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	TableLayout *TableLayout `gorm:"foreignKey:TableLayoutID" json:"table_layout,omitempty"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
