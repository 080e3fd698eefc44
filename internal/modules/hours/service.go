package hours

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
	hours  *repository.OperatingHourRepository
	access AccessChecker
}

func NewService(hours *repository.OperatingHourRepository, access AccessChecker) *Service {
	return &Service{hours: hours, access: access}
}

func (s *Service) readable(ctx context.Context, role string) func(entity string) bool {
	return func(entity string) bool {
		return s.access.Can(ctx, role, entity, domain.OpRead)
	}
}

func (s *Service) List(ctx context.Context, role string, rels relations.Set, restaurantID *uuid.UUID) ([]domain.OperatingHour, error) {
	return s.hours.ListExpanded(ctx, rels.Filter(s.readable(ctx, role)), restaurantID)
}

func (s *Service) Get(ctx context.Context, role string, id uuid.UUID, rels relations.Set) (*domain.OperatingHour, error) {
	if rels.IsEmpty() {
		rels = relations.Of(s.hours.RelationNames()...)
	}
	return s.hours.GetExpanded(ctx, id, rels.Filter(s.readable(ctx, role)))
}

func (s *Service) Create(ctx context.Context, req CreateOperatingHourRequest) (*domain.OperatingHour, error) {
	oh := &domain.OperatingHour{
		RestaurantID: *req.RestaurantID,
		DayOfWeek:    *req.DayOfWeek,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
	}
	if err := s.hours.Create(ctx, oh); err != nil {
		return nil, err
	}
	return oh, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateOperatingHourRequest) (*domain.OperatingHour, error) {
	oh, err := s.hours.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oh.RestaurantID = *req.RestaurantID
	oh.DayOfWeek = *req.DayOfWeek
	oh.StartTime = req.StartTime
	oh.EndTime = req.EndTime

	if err := s.hours.Update(ctx, oh); err != nil {
		return nil, err
	}
	return oh, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.hours.Delete(ctx, id)
}
