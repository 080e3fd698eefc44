package preference

import "github.com/google/uuid"

type CreateCustomerPreferenceRequest struct {
	CustomerID      *uuid.UUID `json:"customer_id" validate:"required"`
	PreferenceType  string     `json:"preference_type" validate:"required"`
	PreferenceValue string     `json:"preference_value" validate:"required"`
}

type UpdateCustomerPreferenceRequest struct {
	CustomerID      *uuid.UUID `json:"customer_id" validate:"required"`
	PreferenceType  string     `json:"preference_type" validate:"required"`
	PreferenceValue string     `json:"preference_value" validate:"required"`
}
