package reservation

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tablebook/internal/domain"
	"tablebook/internal/pkg/relations"
)

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	if r != nil && r.ID == uuid.Nil {
		r.ID = uuid.New() // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id uuid.UUID, preloads ...string) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) Update(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReservationRepository) ListExpanded(ctx context.Context, rels relations.Set, restaurantID, customerID, tableLayoutID *uuid.UUID) ([]domain.Reservation, error) {
	args := m.Called(ctx, rels, restaurantID, customerID, tableLayoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) GetExpanded(ctx context.Context, id uuid.UUID, rels relations.Set) (*domain.Reservation, error) {
	args := m.Called(ctx, id, rels)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) RelationNames() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

type MockAccessChecker struct {
	mock.Mock
}

func (m *MockAccessChecker) Can(ctx context.Context, role, entity, operation string) bool {
	args := m.Called(ctx, role, entity, operation)
	return args.Bool(0)
}

func testRequest() CreateReservationRequest {
	customerID := uuid.New()
	restaurantID := uuid.New()
	layoutID := uuid.New()
	return CreateReservationRequest{
		CustomerID:     &customerID,
		RestaurantID:   &restaurantID,
		TableLayoutID:  &layoutID,
		Date:           "2026-09-12",
		Time:           "19:30",
		NumberOfGuests: 4,
	}
}

func TestService_Create_DefaultsToPending(t *testing.T) {
	mockRepo := new(MockReservationRepository)
	mockAccess := new(MockAccessChecker)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, mockAccess)

	r, err := service.Create(context.Background(), testRequest())

	assert.NoError(t, err)
	assert.NotNil(t, r)
	assert.Equal(t, domain.ReservationPending, r.Status)
	assert.Equal(t, 4, r.NumberOfGuests)
	mockRepo.AssertExpectations(t)
}

func TestService_Create_KeepsExplicitStatus(t *testing.T) {
	mockRepo := new(MockReservationRepository)
	mockAccess := new(MockAccessChecker)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, mockAccess)

	req := testRequest()
	req.Status = domain.ReservationConfirmed

	r, err := service.Create(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, domain.ReservationConfirmed, r.Status)
}

func TestService_Create_SlotTaken(t *testing.T) {
	mockRepo := new(MockReservationRepository)
	mockAccess := new(MockAccessChecker)

	dupErr := &fakeUniqueError{}
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(dupErr)

	service := NewService(mockRepo, mockAccess)

	_, err := service.Create(context.Background(), testRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
}

type fakeUniqueError struct{}

func (e *fakeUniqueError) Error() string {
	return "UNIQUE constraint failed: reservations.table_layout_id, reservations.date, reservations.time"
}

func TestService_Update_ConfirmsPending(t *testing.T) {
	mockRepo := new(MockReservationRepository)
	mockAccess := new(MockAccessChecker)

	id := uuid.New()
	existing := &domain.Reservation{
		ID:             id,
		CustomerID:     uuid.New(),
		RestaurantID:   uuid.New(),
		TableLayoutID:  uuid.New(),
		Date:           "2026-09-12",
		Time:           "19:30",
		NumberOfGuests: 4,
		Status:         domain.ReservationPending,
	}

	mockRepo.On("GetByID", mock.Anything, id).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, mockAccess)

	req := UpdateReservationRequest{
		CustomerID:     &existing.CustomerID,
		RestaurantID:   &existing.RestaurantID,
		TableLayoutID:  &existing.TableLayoutID,
		Date:           existing.Date,
		Time:           existing.Time,
		NumberOfGuests: existing.NumberOfGuests,
		Status:         domain.ReservationConfirmed,
	}

	r, err := service.Update(context.Background(), id, req)

	assert.NoError(t, err)
	assert.Equal(t, domain.ReservationConfirmed, r.Status)
	mockRepo.AssertExpectations(t)
}

func TestService_Update_EmptyStatusKeepsCurrent(t *testing.T) {
	mockRepo := new(MockReservationRepository)
	mockAccess := new(MockAccessChecker)

	id := uuid.New()
	existing := &domain.Reservation{
		ID:             id,
		CustomerID:     uuid.New(),
		RestaurantID:   uuid.New(),
		TableLayoutID:  uuid.New(),
		Date:           "2026-09-12",
		Time:           "19:30",
		NumberOfGuests: 2,
		Status:         domain.ReservationConfirmed,
	}

	mockRepo.On("GetByID", mock.Anything, id).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, mockAccess)

	req := UpdateReservationRequest{
		CustomerID:     &existing.CustomerID,
		RestaurantID:   &existing.RestaurantID,
		TableLayoutID:  &existing.TableLayoutID,
		Date:           existing.Date,
		Time:           existing.Time,
		NumberOfGuests: 6,
	}

	r, err := service.Update(context.Background(), id, req)

	assert.NoError(t, err)
	assert.Equal(t, domain.ReservationConfirmed, r.Status)
	assert.Equal(t, 6, r.NumberOfGuests)
}

func TestService_List_DropsUnreadableRelations(t *testing.T) {
	mockRepo := new(MockReservationRepository)
	mockAccess := new(MockAccessChecker)

	// Caller may read restaurants but not users.
	mockAccess.On("Can", mock.Anything, "customer", "restaurant", domain.OpRead).Return(true)
	mockAccess.On("Can", mock.Anything, "customer", "user", domain.OpRead).Return(false)

	mockRepo.On("ListExpanded", mock.Anything, relations.Of("restaurant"), (*uuid.UUID)(nil), (*uuid.UUID)(nil), (*uuid.UUID)(nil)).
		Return([]domain.Reservation{}, nil)

	service := NewService(mockRepo, mockAccess)

	_, err := service.List(context.Background(), "customer", relations.Parse("user,restaurant"), nil, nil, nil)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
