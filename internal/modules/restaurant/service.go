package restaurant

import (
	"context"

	"github.com/google/uuid"

	"tablebook/internal/domain"
	"tablebook/internal/pkg/relations"
	"tablebook/internal/repository"
)

// AccessChecker gates relation expansion: related entities the actor cannot
// read are dropped from the response, mirroring the hidden relation columns
// in the admin UI.
type AccessChecker interface {
	Can(ctx context.Context, role, entity, operation string) bool
}

type Service struct {
	restaurants *repository.RestaurantRepository
	access      AccessChecker
}

func NewService(restaurants *repository.RestaurantRepository, access AccessChecker) *Service {
	return &Service{restaurants: restaurants, access: access}
}

func (s *Service) readable(ctx context.Context, role string) func(entity string) bool {
	return func(entity string) bool {
		return s.access.Can(ctx, role, entity, domain.OpRead)
	}
}

func (s *Service) List(ctx context.Context, role string, rels relations.Set, search string) ([]domain.Restaurant, error) {
	return s.restaurants.ListExpanded(ctx, rels.Filter(s.readable(ctx, role)), search)
}

// Get expands the requested relations, or every readable relation when the
// caller asked for none (the detail view's behavior).
func (s *Service) Get(ctx context.Context, role string, id uuid.UUID, rels relations.Set) (*domain.Restaurant, error) {
	if rels.IsEmpty() {
		rels = relations.Of(s.restaurants.RelationNames()...)
	}
	return s.restaurants.GetExpanded(ctx, id, rels.Filter(s.readable(ctx, role)))
}

func (s *Service) Create(ctx context.Context, req CreateRestaurantRequest) (*domain.Restaurant, error) {
	r := &domain.Restaurant{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Location:    req.Location,
		UserID:      *req.UserID,
	}
	if err := s.restaurants.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateRestaurantRequest) (*domain.Restaurant, error) {
	r, err := s.restaurants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.Name = req.Name
	r.Description = req.Description
	r.Image = req.Image
	r.Location = req.Location
	r.UserID = *req.UserID

	if err := s.restaurants.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.restaurants.Delete(ctx, id)
}
