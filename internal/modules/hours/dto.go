package hours

import "github.com/google/uuid"

// day_of_week: 0 = Sunday .. 6 = Saturday. Times are optional "HH:MM".
type CreateOperatingHourRequest struct {
	RestaurantID *uuid.UUID `json:"restaurant_id" validate:"required"`
	DayOfWeek    *int       `json:"day_of_week" validate:"required,gte=0,lte=6"`
	StartTime    string     `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime      string     `json:"end_time" validate:"omitempty,datetime=15:04"`
}

type UpdateOperatingHourRequest struct {
	RestaurantID *uuid.UUID `json:"restaurant_id" validate:"required"`
	DayOfWeek    *int       `json:"day_of_week" validate:"required,gte=0,lte=6"`
	StartTime    string     `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime      string     `json:"end_time" validate:"omitempty,datetime=15:04"`
}
