package trips

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTripNotFound = errors.New("trip not found")

type Repository interface {
	// Route operations
	CreateRoute(ctx context.Context, route *Route) error
	ListRoutes(ctx context.Context) ([]Route, error)

	// Trip operations
	CreateTrip(ctx context.Context, trip *Trip) error
	GetTripByID(ctx context.Context, id uuid.UUID) (*Trip, error)
	SearchTrips(ctx context.Context, query TripSearchQuery) ([]Trip, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateRoute(ctx context.Context, route *Route) error {
	return r.db.WithContext(ctx).Create(route).Error
}

func (r *repository) ListRoutes(ctx context.Context) ([]Route, error) {
	var routes []Route
	err := r.db.WithContext(ctx).
		Order("origin ASC, destination ASC").
		Find(&routes).Error
	return routes, err
}

func (r *repository) CreateTrip(ctx context.Context, trip *Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *repository) GetTripByID(ctx context.Context, id uuid.UUID) (*Trip, error) {
	var trip Trip
	err := r.db.WithContext(ctx).
		Preload("Route").
		Where("id = ?", id).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	return &trip, nil
}

func (r *repository) SearchTrips(ctx context.Context, query TripSearchQuery) ([]Trip, int64, error) {
	var trips []Trip
	var totalCount int64

	// Set defaults
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	baseQuery := r.db.WithContext(ctx).Model(&Trip{})
	baseQuery = r.applyFilters(baseQuery, query)

	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	err := baseQuery.
		Preload("Route").
		Order("departure_time ASC").
		Offset(offset).
		Limit(query.Limit).
		Find(&trips).Error

	return trips, totalCount, err
}

// applyFilters applies search filters to the GORM query
func (r *repository) applyFilters(query *gorm.DB, filters TripSearchQuery) *gorm.DB {
	if filters.Status != "" {
		query = query.Where("trips.status = ?", filters.Status)
	} else {
		query = query.Where("trips.status = ?", TripStatusScheduled)
	}

	// Origin/destination filter via the routes table
	if filters.Origin != "" || filters.Destination != "" {
		query = query.Joins("JOIN routes ON routes.id = trips.route_id")
		if filters.Origin != "" {
			query = query.Where("routes.origin ILIKE ?", filters.Origin)
		}
		if filters.Destination != "" {
			query = query.Where("routes.destination ILIKE ?", filters.Destination)
		}
	}

	// Single-day departure window
	if filters.Date != "" {
		if day, err := time.Parse("2006-01-02", filters.Date); err == nil {
			query = query.Where("trips.departure_time >= ? AND trips.departure_time < ?",
				day, day.Add(24*time.Hour))
		}
	}

	return query
}

// CalculateTotalPages computes page count for paginated listings
func CalculateTotalPages(totalCount int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalCount) / float64(limit)))
}
