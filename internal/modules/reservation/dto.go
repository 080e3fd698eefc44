package reservation

import "github.com/google/uuid"

type CreateReservationRequest struct {
	CustomerID     *uuid.UUID `json:"customer_id" validate:"required"`
	RestaurantID   *uuid.UUID `json:"restaurant_id" validate:"required"`
	TableLayoutID  *uuid.UUID `json:"table_layout_id" validate:"required"`
	Date           string     `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time           string     `json:"time" validate:"omitempty,datetime=15:04"`
	NumberOfGuests int        `json:"number_of_guests" validate:"gte=0"`
	Status         string     `json:"status"`
}

type UpdateReservationRequest struct {
	CustomerID     *uuid.UUID `json:"customer_id" validate:"required"`
	RestaurantID   *uuid.UUID `json:"restaurant_id" validate:"required"`
	TableLayoutID  *uuid.UUID `json:"table_layout_id" validate:"required"`
	Date           string     `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time           string     `json:"time" validate:"omitempty,datetime=15:04"`
	NumberOfGuests int        `json:"number_of_guests" validate:"gte=0"`
	Status         string     `json:"status"`
}
