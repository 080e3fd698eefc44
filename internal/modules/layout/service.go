package layout

import (
	"context"

	"github.com/google/uuid"

	"tablebook/internal/domain"
	"tablebook/internal/pkg/relations"
	"tablebook/internal/repository"
)

type AccessChecker interface {
	Can(ctx context.Context, role, entity, operation string) bool
}

type Service struct {
	layouts *repository.TableLayoutRepository
	access  AccessChecker
}

func NewService(layouts *repository.TableLayoutRepository, access AccessChecker) *Service {
	return &Service{layouts: layouts, access: access}
}

func (s *Service) readable(ctx context.Context, role string) func(entity string) bool {
	return func(entity string) bool {
		return s.access.Can(ctx, role, entity, domain.OpRead)
	}
}

func (s *Service) List(ctx context.Context, role string, rels relations.Set, restaurantID *uuid.UUID) ([]domain.TableLayout, error) {
	return s.layouts.ListExpanded(ctx, rels.Filter(s.readable(ctx, role)), restaurantID)
}

func (s *Service) Get(ctx context.Context, role string, id uuid.UUID, rels relations.Set) (*domain.TableLayout, error) {
	if rels.IsEmpty() {
		rels = relations.Of(s.layouts.RelationNames()...)
	}
	return s.layouts.GetExpanded(ctx, id, rels.Filter(s.readable(ctx, role)))
}

func (s *Service) Create(ctx context.Context, req CreateTableLayoutRequest) (*domain.TableLayout, error) {
	tl := &domain.TableLayout{
		RestaurantID: *req.RestaurantID,
		Name:         req.Name,
		Capacity:     req.Capacity,
	}
	if err := s.layouts.Create(ctx, tl); err != nil {
		return nil, err
	}
	return tl, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateTableLayoutRequest) (*domain.TableLayout, error) {
	tl, err := s.layouts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tl.RestaurantID = *req.RestaurantID
	tl.Name = req.Name
	tl.Capacity = req.Capacity

	if err := s.layouts.Update(ctx, tl); err != nil {
		return nil, err
	}
	return tl, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.layouts.Delete(ctx, id)
}
