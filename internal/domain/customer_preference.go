package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerPreference struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID      uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	PreferenceType  string    `gorm:"size:255;not null" json:"preference_type"`
	PreferenceValue string    `gorm:"size:255;not null" json:"preference_value"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:CustomerID" json:"user,omitempty"`
}

func (p *CustomerPreference) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
