package reservation

import (
	"context"

	"github.com/google/uuid"

	"tablebook/internal/domain"
	"tablebook/internal/pkg/relations"
)

// ReservationRepository is what the service needs from persistence; the
// gorm-backed repository satisfies it, the tests mock it.
type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id uuid.UUID, preloads ...string) (*domain.Reservation, error)
	Update(ctx context.Context, r *domain.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListExpanded(ctx context.Context, rels relations.Set, restaurantID, customerID, tableLayoutID *uuid.UUID) ([]domain.Reservation, error)
	GetExpanded(ctx context.Context, id uuid.UUID, rels relations.Set) (*domain.Reservation, error)
	RelationNames() []string
}

type AccessChecker interface {
	Can(ctx context.Context, role, entity, operation string) bool
}
