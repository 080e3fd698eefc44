package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tablebook/internal/domain"
	"tablebook/internal/pkg/relations"
)

var customerPreferencePreloads = map[string]string{
	"user": "User",
}

type CustomerPreferenceRepository struct {
	*CRUD[domain.CustomerPreference]
}

func NewCustomerPreferenceRepository(db *gorm.DB) *CustomerPreferenceRepository {
	return &CustomerPreferenceRepository{CRUD: NewCRUD[domain.CustomerPreference](db)}
}

func (r *CustomerPreferenceRepository) RelationNames() []string {
	return []string{"user"}
}

func (r *CustomerPreferenceRepository) ListExpanded(ctx context.Context, rels relations.Set, customerID *uuid.UUID) ([]domain.CustomerPreference, error) {
	q := ListQuery{Preloads: preloadsFor(customerPreferencePreloads, rels)}
	if customerID != nil {
		q.Filters = map[string]uuid.UUID{"customer_id": *customerID}
	}
	return r.List(ctx, q)
}

func (r *CustomerPreferenceRepository) GetExpanded(ctx context.Context, id uuid.UUID, rels relations.Set) (*domain.CustomerPreference, error) {
	return r.GetByID(ctx, id, preloadsFor(customerPreferencePreloads, rels)...)
}
