package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tablebook/internal/domain"
	"tablebook/internal/pkg/relations"
)

var tableLayoutPreloads = map[string]string{
	"restaurant":  "Restaurant",
	"reservation": "Reservations",
}

type TableLayoutRepository struct {
	*CRUD[domain.TableLayout]
}

func NewTableLayoutRepository(db *gorm.DB) *TableLayoutRepository {
	return &TableLayoutRepository{CRUD: NewCRUD[domain.TableLayout](db)}
}

func (r *TableLayoutRepository) RelationNames() []string {
	return []string{"restaurant", "reservation"}
}

func (r *TableLayoutRepository) ListExpanded(ctx context.Context, rels relations.Set, restaurantID *uuid.UUID) ([]domain.TableLayout, error) {
	q := ListQuery{Preloads: preloadsFor(tableLayoutPreloads, rels)}
	if restaurantID != nil {
		q.Filters = map[string]uuid.UUID{"restaurant_id": *restaurantID}
	}

	items, err := r.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if err := r.attachCounts(ctx, items, rels); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *TableLayoutRepository) GetExpanded(ctx context.Context, id uuid.UUID, rels relations.Set) (*domain.TableLayout, error) {
	item, err := r.GetByID(ctx, id, preloadsFor(tableLayoutPreloads, rels)...)
	if err != nil {
		return nil, err
	}
	one := []domain.TableLayout{*item}
	if err := r.attachCounts(ctx, one, rels); err != nil {
		return nil, err
	}
	return &one[0], nil
}

func (r *TableLayoutRepository) attachCounts(ctx context.Context, items []domain.TableLayout, rels relations.Set) error {
	if len(items) == 0 || !rels.Count("reservation") {
		return nil
	}

	ids := make([]uuid.UUID, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}

	counts, err := countByFK(ctx, r.db, &domain.Reservation{}, "table_layout_id", ids)
	if err != nil {
		return err
	}
	for i := range items {
		n := counts[items[i].ID]
		items[i].Counts = &domain.TableLayoutCounts{Reservation: &n}
	}
	return nil
}
