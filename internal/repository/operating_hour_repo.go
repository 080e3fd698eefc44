package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tablebook/internal/domain"
	"tablebook/internal/pkg/relations"
)

var operatingHourPreloads = map[string]string{
	"restaurant": "Restaurant",
}

type OperatingHourRepository struct {
	*CRUD[domain.OperatingHour]
}

func NewOperatingHourRepository(db *gorm.DB) *OperatingHourRepository {
	return &OperatingHourRepository{CRUD: NewCRUD[domain.OperatingHour](db)}
}

func (r *OperatingHourRepository) RelationNames() []string {
	return []string{"restaurant"}
}

func (r *OperatingHourRepository) ListExpanded(ctx context.Context, rels relations.Set, restaurantID *uuid.UUID) ([]domain.OperatingHour, error) {
	q := ListQuery{Preloads: preloadsFor(operatingHourPreloads, rels)}
	if restaurantID != nil {
		q.Filters = map[string]uuid.UUID{"restaurant_id": *restaurantID}
	}
	return r.List(ctx, q)
}

func (r *OperatingHourRepository) GetExpanded(ctx context.Context, id uuid.UUID, rels relations.Set) (*domain.OperatingHour, error) {
	return r.GetByID(ctx, id, preloadsFor(operatingHourPreloads, rels)...)
}
