package preference

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
	preferences *repository.CustomerPreferenceRepository
	access      AccessChecker
}

func NewService(preferences *repository.CustomerPreferenceRepository, access AccessChecker) *Service {
	return &Service{preferences: preferences, access: access}
}

func (s *Service) readable(ctx context.Context, role string) func(entity string) bool {
	return func(entity string) bool {
		return s.access.Can(ctx, role, entity, domain.OpRead)
	}
}

func (s *Service) List(ctx context.Context, role string, rels relations.Set, customerID *uuid.UUID) ([]domain.CustomerPreference, error) {
	return s.preferences.ListExpanded(ctx, rels.Filter(s.readable(ctx, role)), customerID)
}

func (s *Service) Get(ctx context.Context, role string, id uuid.UUID, rels relations.Set) (*domain.CustomerPreference, error) {
	if rels.IsEmpty() {
		rels = relations.Of(s.preferences.RelationNames()...)
	}
	return s.preferences.GetExpanded(ctx, id, rels.Filter(s.readable(ctx, role)))
}

func (s *Service) Create(ctx context.Context, req CreateCustomerPreferenceRequest) (*domain.CustomerPreference, error) {
	cp := &domain.CustomerPreference{
		CustomerID:      *req.CustomerID,
		PreferenceType:  req.PreferenceType,
		PreferenceValue: req.PreferenceValue,
	}
	if err := s.preferences.Create(ctx, cp); err != nil {
		return nil, err
	}
	return cp, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerPreferenceRequest) (*domain.CustomerPreference, error) {
	cp, err := s.preferences.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cp.CustomerID = *req.CustomerID
	cp.PreferenceType = req.PreferenceType
	cp.PreferenceValue = req.PreferenceValue

	if err := s.preferences.Update(ctx, cp); err != nil {
		return nil, err
	}
	return cp, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.preferences.Delete(ctx, id)
}
