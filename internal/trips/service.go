package trips

import (
	"context"
	"fmt"
	"time"

	"busly/internal/shared/constants"
	"busly/pkg/cache"
	"busly/pkg/logger"

	"github.com/google/uuid"
)

// Service interface defines the contract for trip browsing and management
type Service interface {
	SearchTrips(ctx context.Context, query TripSearchQuery) (*PaginatedTrips, error)
	GetTrip(ctx context.Context, id uuid.UUID) (*TripResponse, error)
	ListRoutes(ctx context.Context) ([]Route, error)

	// Admin operations
	CreateRoute(ctx context.Context, req CreateRouteRequest) (*Route, error)
	CreateTrip(ctx context.Context, req CreateTripRequest) (*TripResponse, error)
}

type service struct {
	repo  Repository
	cache cache.Service // nil disables caching
}

// NewService creates a new trip service instance
func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{
		repo:  repo,
		cache: cacheService,
	}
}

func (s *service) SearchTrips(ctx context.Context, query TripSearchQuery) (*PaginatedTrips, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	fetch := func() (interface{}, error) {
		trips, total, err := s.repo.SearchTrips(ctx, query)
		if err != nil {
			return nil, err
		}

		responses := make([]TripResponse, 0, len(trips))
		for i := range trips {
			responses = append(responses, trips[i].ToResponse())
		}

		return &PaginatedTrips{
			Trips:      responses,
			TotalCount: total,
			Page:       query.Page,
			Limit:      query.Limit,
			TotalPages: CalculateTotalPages(total, query.Limit),
		}, nil
	}

	if s.cache == nil {
		result, err := fetch()
		if err != nil {
			return nil, err
		}
		return result.(*PaginatedTrips), nil
	}

	key := fmt.Sprintf("%s:origin:%s:dest:%s:date:%s:status:%s:page:%d:limit:%d",
		constants.CacheKeyTripSearch,
		query.Origin, query.Destination, query.Date, query.Status, query.Page, query.Limit)

	var cached PaginatedTrips
	if err := s.cache.GetOrSet(ctx, key, constants.TTLTripSearch, fetch, &cached); err != nil {
		return nil, err
	}
	return &cached, nil
}

func (s *service) GetTrip(ctx context.Context, id uuid.UUID) (*TripResponse, error) {
	fetch := func() (interface{}, error) {
		trip, err := s.repo.GetTripByID(ctx, id)
		if err != nil {
			return nil, err
		}
		resp := trip.ToResponse()
		return &resp, nil
	}

	if s.cache == nil {
		result, err := fetch()
		if err != nil {
			return nil, err
		}
		return result.(*TripResponse), nil
	}

	var cached TripResponse
	key := constants.CacheKeyTripDetail + id.String()
	if err := s.cache.GetOrSet(ctx, key, constants.TTLTripDetail, fetch, &cached); err != nil {
		return nil, err
	}
	return &cached, nil
}

func (s *service) ListRoutes(ctx context.Context) ([]Route, error) {
	if s.cache == nil {
		return s.repo.ListRoutes(ctx)
	}

	var cached []Route
	err := s.cache.GetOrSet(ctx, constants.CacheKeyRoutesList, constants.TTLRoutesList, func() (interface{}, error) {
		return s.repo.ListRoutes(ctx)
	}, &cached)
	if err != nil {
		return nil, err
	}
	return cached, nil
}

func (s *service) CreateRoute(ctx context.Context, req CreateRouteRequest) (*Route, error) {
	route := &Route{
		Name:        req.Name,
		Origin:      req.Origin,
		Destination: req.Destination,
		DistanceKM:  req.DistanceKM,
	}

	if err := s.repo.CreateRoute(ctx, route); err != nil {
		return nil, fmt.Errorf("failed to create route: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, constants.CacheKeyRoutesList); err != nil {
			logger.GetDefault().Warn("route cache invalidation failed", "error", err.Error())
		}
	}

	return route, nil
}

func (s *service) CreateTrip(ctx context.Context, req CreateTripRequest) (*TripResponse, error) {
	routeID, err := uuid.Parse(req.RouteID)
	if err != nil {
		return nil, fmt.Errorf("invalid route ID: %w", err)
	}

	departure, err := time.Parse(time.RFC3339, req.DepartureTime)
	if err != nil {
		return nil, fmt.Errorf("invalid departure time: %w", err)
	}

	seatClass := req.SeatClass
	if seatClass == "" {
		seatClass = "economy"
	}

	trip := &Trip{
		RouteID:        routeID,
		DepartureTime:  departure,
		Price:          req.Price,
		SeatClass:      seatClass,
		TotalSeats:     req.TotalSeats,
		AvailableSeats: req.TotalSeats,
		Status:         TripStatusScheduled,
	}

	if err := s.repo.CreateTrip(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.DeletePattern(ctx, constants.CacheKeyTripPattern); err != nil {
			logger.GetDefault().Warn("trip cache invalidation failed", "error", err.Error())
		}
	}

	resp := trip.ToResponse()
	return &resp, nil
}
