package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tablebook/internal/domain"
	"tablebook/internal/pkg/relations"
)

// restaurantPreloads maps wire relation names to gorm associations.
var restaurantPreloads = map[string]string{
	"user":           "User",
	"operating_hour": "OperatingHours",
	"reservation":    "Reservations",
	"table_layout":   "TableLayouts",
}

type RestaurantRepository struct {
	*CRUD[domain.Restaurant]
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{CRUD: NewCRUD[domain.Restaurant](db)}
}

// RelationNames lists the entities a restaurant can expand, for the detail
// view's expand-everything-readable behavior.
func (r *RestaurantRepository) RelationNames() []string {
	return []string{"user", "operating_hour", "reservation", "table_layout"}
}

func (r *RestaurantRepository) ListExpanded(ctx context.Context, rels relations.Set, search string) ([]domain.Restaurant, error) {
	q := ListQuery{Preloads: preloadsFor(restaurantPreloads, rels)}
	if search != "" {
		q.Search = Search{Column: "name", Term: search}
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

func (r *RestaurantRepository) GetExpanded(ctx context.Context, id uuid.UUID, rels relations.Set) (*domain.Restaurant, error) {
	item, err := r.GetByID(ctx, id, preloadsFor(restaurantPreloads, rels)...)
	if err != nil {
		return nil, err
	}
	one := []domain.Restaurant{*item}
	if err := r.attachCounts(ctx, one, rels); err != nil {
		return nil, err
	}
	return &one[0], nil
}

func (r *RestaurantRepository) attachCounts(ctx context.Context, items []domain.Restaurant, rels relations.Set) error {
	if len(items) == 0 {
		return nil
	}

	wantHours := rels.Count("operating_hour")
	wantReservations := rels.Count("reservation")
	wantLayouts := rels.Count("table_layout")
	if !wantHours && !wantReservations && !wantLayouts {
		return nil
	}

	ids := make([]uuid.UUID, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}

	type target struct {
		want  bool
		model any
		set   func(c *domain.RestaurantCounts, n int64)
	}
	targets := []target{
		{wantHours, &domain.OperatingHour{}, func(c *domain.RestaurantCounts, n int64) { c.OperatingHour = &n }},
		{wantReservations, &domain.Reservation{}, func(c *domain.RestaurantCounts, n int64) { c.Reservation = &n }},
		{wantLayouts, &domain.TableLayout{}, func(c *domain.RestaurantCounts, n int64) { c.TableLayout = &n }},
	}

	for _, t := range targets {
		if !t.want {
			continue
		}
		counts, err := countByFK(ctx, r.db, t.model, "restaurant_id", ids)
		if err != nil {
			return err
		}
		for i := range items {
			if items[i].Counts == nil {
				items[i].Counts = &domain.RestaurantCounts{}
			}
			t.set(items[i].Counts, counts[items[i].ID])
		}
	}
	return nil
}

// preloadsFor translates the expanded relation names in rels through the
// entity's wire-name -> association map.
func preloadsFor(mapping map[string]string, rels relations.Set) []string {
	var out []string
	for name, assoc := range mapping {
		if rels.Has(name) {
			out = append(out, assoc)
		}
	}
	return out
}
