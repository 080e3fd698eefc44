package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tablebook/internal/domain"
	"tablebook/internal/pkg/relations"
)

var reservationPreloads = map[string]string{
	"user":         "User",
	"restaurant":   "Restaurant",
	"table_layout": "TableLayout",
}

type ReservationRepository struct {
	*CRUD[domain.Reservation]
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{CRUD: NewCRUD[domain.Reservation](db)}
}

func (r *ReservationRepository) RelationNames() []string {
	return []string{"user", "restaurant", "table_layout"}
}

// ListExpanded filters by any combination of owning FKs; nil means no filter.
func (r *ReservationRepository) ListExpanded(ctx context.Context, rels relations.Set, restaurantID, customerID, tableLayoutID *uuid.UUID) ([]domain.Reservation, error) {
	q := ListQuery{
		Preloads: preloadsFor(reservationPreloads, rels),
		Filters:  map[string]uuid.UUID{},
	}
	if restaurantID != nil {
		q.Filters["restaurant_id"] = *restaurantID
	}
	if customerID != nil {
		q.Filters["customer_id"] = *customerID
	}
	if tableLayoutID != nil {
		q.Filters["table_layout_id"] = *tableLayoutID
	}
	return r.List(ctx, q)
}

func (r *ReservationRepository) GetExpanded(ctx context.Context, id uuid.UUID, rels relations.Set) (*domain.Reservation, error) {
	return r.GetByID(ctx, id, preloadsFor(reservationPreloads, rels)...)
}
