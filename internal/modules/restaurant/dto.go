package restaurant

import "github.com/google/uuid"

// FK fields are pointers: absent and null both fail "required" before any
// persistence work happens.
type CreateRestaurantRequest struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Location    string     `json:"location" validate:"required"`
	UserID      *uuid.UUID `json:"user_id" validate:"required"`
}

type UpdateRestaurantRequest struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Location    string     `json:"location" validate:"required"`
	UserID      *uuid.UUID `json:"user_id" validate:"required"`
}
