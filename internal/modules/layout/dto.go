package layout

import "github.com/google/uuid"

type CreateTableLayoutRequest struct {
	RestaurantID *uuid.UUID `json:"restaurant_id" validate:"required"`
	Name         string     `json:"name" validate:"required"`
	Capacity     int        `json:"capacity" validate:"gte=0"`
}

type UpdateTableLayoutRequest struct {
	RestaurantID *uuid.UUID `json:"restaurant_id" validate:"required"`
	Name         string     `json:"name" validate:"required"`
	Capacity     int        `json:"capacity" validate:"gte=0"`
}
