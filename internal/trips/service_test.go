package trips

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) CreateRoute(ctx context.Context, route *Route) error {
	args := m.Called(ctx, route)
	if args.Error(0) == nil {
		route.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockRepository) ListRoutes(ctx context.Context) ([]Route, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Route), args.Error(1)
}

func (m *mockRepository) CreateTrip(ctx context.Context, trip *Trip) error {
	args := m.Called(ctx, trip)
	if args.Error(0) == nil {
		trip.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockRepository) GetTripByID(ctx context.Context, id uuid.UUID) (*Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Trip), args.Error(1)
}

func (m *mockRepository) SearchTrips(ctx context.Context, query TripSearchQuery) ([]Trip, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]Trip), args.Get(1).(int64), args.Error(2)
}

func TestSearchTrips_AppliesPaginationDefaults(t *testing.T) {
	repo := new(mockRepository)
	service := NewService(repo, nil)

	ctx := context.Background()

	repo.On("SearchTrips", ctx, mock.MatchedBy(func(q TripSearchQuery) bool {
		return q.Page == 1 && q.Limit == 10
	})).Return([]Trip{}, int64(0), nil)

	result, err := service.SearchTrips(ctx, TripSearchQuery{})

	assert.NoError(t, err)
	if assert.NotNil(t, result) {
		assert.Equal(t, 1, result.Page)
		assert.Equal(t, 10, result.Limit)
	}
}

func TestSearchTrips_MapsResultsAndTotals(t *testing.T) {
	repo := new(mockRepository)
	service := NewService(repo, nil)

	ctx := context.Background()
	route := &Route{ID: uuid.New(), Name: "Coastal Express", Origin: "San Francisco", Destination: "Los Angeles"}
	found := []Trip{
		{
			ID:             uuid.New(),
			RouteID:        route.ID,
			DepartureTime:  time.Now().Add(24 * time.Hour),
			Price:          25.00,
			SeatClass:      "economy",
			TotalSeats:     40,
			AvailableSeats: 12,
			Status:         TripStatusScheduled,
			Route:          route,
		},
	}

	repo.On("SearchTrips", ctx, mock.AnythingOfType("trips.TripSearchQuery")).
		Return(found, int64(25), nil)

	result, err := service.SearchTrips(ctx, TripSearchQuery{Page: 1, Limit: 10})

	assert.NoError(t, err)
	if assert.Len(t, result.Trips, 1) {
		assert.Equal(t, "Coastal Express", result.Trips[0].RouteName)
		assert.Equal(t, "San Francisco", result.Trips[0].Origin)
		assert.Equal(t, 12, result.Trips[0].AvailableSeats)
	}
	assert.Equal(t, int64(25), result.TotalCount)
	assert.Equal(t, 3, result.TotalPages)
}

func TestGetTrip_NotFound(t *testing.T) {
	repo := new(mockRepository)
	service := NewService(repo, nil)

	ctx := context.Background()
	tripID := uuid.New()

	repo.On("GetTripByID", ctx, tripID).Return(nil, ErrTripNotFound)

	result, err := service.GetTrip(ctx, tripID)

	assert.ErrorIs(t, err, ErrTripNotFound)
	assert.Nil(t, result)
}

func TestCreateTrip_InvalidDepartureTime(t *testing.T) {
	repo := new(mockRepository)
	service := NewService(repo, nil)

	result, err := service.CreateTrip(context.Background(), CreateTripRequest{
		RouteID:       uuid.New().String(),
		DepartureTime: "tomorrow at noon",
		Price:         25.00,
		TotalSeats:    40,
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	repo.AssertNotCalled(t, "CreateTrip", mock.Anything, mock.Anything)
}

func TestCreateTrip_DefaultsSeatClassAndAvailability(t *testing.T) {
	repo := new(mockRepository)
	service := NewService(repo, nil)

	ctx := context.Background()

	repo.On("CreateTrip", ctx, mock.MatchedBy(func(trip *Trip) bool {
		return trip.SeatClass == "economy" &&
			trip.AvailableSeats == 40 &&
			trip.Status == TripStatusScheduled
	})).Return(nil)

	result, err := service.CreateTrip(ctx, CreateTripRequest{
		RouteID:       uuid.New().String(),
		DepartureTime: time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		Price:         25.00,
		TotalSeats:    40,
	})

	assert.NoError(t, err)
	if assert.NotNil(t, result) {
		assert.Equal(t, 40, result.AvailableSeats)
	}
	repo.AssertExpectations(t)
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 3, CalculateTotalPages(25, 10))
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 0, CalculateTotalPages(25, 0))
}

func TestTripStatus(t *testing.T) {
	assert.True(t, TripStatusScheduled.IsBookable())
	assert.False(t, TripStatusDeparted.IsBookable())
	assert.True(t, TripStatusCancelled.IsValid())
	assert.False(t, TripStatus("boarding").IsValid())
}
