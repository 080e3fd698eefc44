package reservation

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"tablebook/internal/domain"
	"tablebook/internal/pkg/relations"
)

type Service struct {
	reservations ReservationRepository
	access       AccessChecker
}

func NewService(reservations ReservationRepository, access AccessChecker) *Service {
	return &Service{reservations: reservations, access: access}
}

func (s *Service) readable(ctx context.Context, role string) func(entity string) bool {
	return func(entity string) bool {
		return s.access.Can(ctx, role, entity, domain.OpRead)
	}
}

func (s *Service) List(ctx context.Context, role string, rels relations.Set, restaurantID, customerID, tableLayoutID *uuid.UUID) ([]domain.Reservation, error) {
	return s.reservations.ListExpanded(ctx, rels.Filter(s.readable(ctx, role)), restaurantID, customerID, tableLayoutID)
}

func (s *Service) Get(ctx context.Context, role string, id uuid.UUID, rels relations.Set) (*domain.Reservation, error) {
	if rels.IsEmpty() {
		rels = relations.Of(s.reservations.RelationNames()...)
	}
	return s.reservations.GetExpanded(ctx, id, rels.Filter(s.readable(ctx, role)))
}

func (s *Service) Create(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error) {
	status := req.Status
	if status == "" {
		status = domain.ReservationPending
	}

	r := &domain.Reservation{
		CustomerID:     *req.CustomerID,
		RestaurantID:   *req.RestaurantID,
		TableLayoutID:  *req.TableLayoutID,
		Date:           req.Date,
		Time:           req.Time,
		NumberOfGuests: req.NumberOfGuests,
		Status:         status,
	}

	if err := s.reservations.Create(ctx, r); err != nil {
		if isDuplicate(err) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}
	return r, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateReservationRequest) (*domain.Reservation, error) {
	r, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.CustomerID = *req.CustomerID
	r.RestaurantID = *req.RestaurantID
	r.TableLayoutID = *req.TableLayoutID
	r.Date = req.Date
	r.Time = req.Time
	r.NumberOfGuests = req.NumberOfGuests
	if req.Status != "" {
		r.Status = req.Status
	}

	if err := s.reservations.Update(ctx, r); err != nil {
		if isDuplicate(err) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}
	return r, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.reservations.Delete(ctx, id)
}

// isDuplicate recognizes the double-booking index on both backends: 23505 on
// Postgres, the UNIQUE constraint message on SQLite.
func isDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
