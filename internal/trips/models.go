package trips

import (
	"time"

	"github.com/google/uuid"
)

type TripStatus string

const (
	TripStatusScheduled TripStatus = "scheduled"
	TripStatusDeparted  TripStatus = "departed"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

// IsValid checks if the trip status is valid
func (s TripStatus) IsValid() bool {
	switch s {
	case TripStatusScheduled, TripStatusDeparted, TripStatusCompleted, TripStatusCancelled:
		return true
	}
	return false
}

// IsBookable checks whether tickets may still be sold for this status
func (s TripStatus) IsBookable() bool {
	return s == TripStatusScheduled
}

// Route is a named origin/destination pair served by the operator
type Route struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name        string    `json:"name" gorm:"not null;size:255"`
	Origin      string    `json:"origin" gorm:"not null;size:255;index"`
	Destination string    `json:"destination" gorm:"not null;size:255;index"`
	DistanceKM  float64   `json:"distance_km" gorm:"check:distance_km >= 0"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// Trip is one scheduled departure on a route. AvailableSeats is maintained
// by the store-side recompute, never written directly by handlers.
type Trip struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	RouteID        uuid.UUID  `json:"route_id" gorm:"type:uuid;index;not null"`
	DepartureTime  time.Time  `json:"departure_time" gorm:"not null;index"`
	Price          float64    `json:"price" gorm:"not null;check:price >= 0"`
	SeatClass      string     `json:"seat_class" gorm:"type:varchar(20);default:'economy'"`
	TotalSeats     int        `json:"total_seats" gorm:"not null;check:total_seats > 0"`
	AvailableSeats int        `json:"available_seats" gorm:"not null;check:available_seats >= 0"`
	Status         TripStatus `json:"status" gorm:"type:varchar(20);default:'scheduled'"`

	Route *Route `json:"route,omitempty" gorm:"foreignKey:RouteID;constraint:OnDelete:RESTRICT;"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName sets the table name for Route
func (Route) TableName() string {
	return "routes"
}

// TableName sets the table name for Trip
func (Trip) TableName() string {
	return "trips"
}

// TripResponse is the API shape for a trip
type TripResponse struct {
	ID             string     `json:"id"`
	RouteID        string     `json:"route_id"`
	RouteName      string     `json:"route_name,omitempty"`
	Origin         string     `json:"origin,omitempty"`
	Destination    string     `json:"destination,omitempty"`
	DepartureTime  time.Time  `json:"departure_time"`
	Price          float64    `json:"price"`
	SeatClass      string     `json:"seat_class"`
	TotalSeats     int        `json:"total_seats"`
	AvailableSeats int        `json:"available_seats"`
	Status         TripStatus `json:"status"`
}

// ToResponse converts a Trip (with optional preloaded Route) to TripResponse
func (t *Trip) ToResponse() TripResponse {
	resp := TripResponse{
		ID:             t.ID.String(),
		RouteID:        t.RouteID.String(),
		DepartureTime:  t.DepartureTime,
		Price:          t.Price,
		SeatClass:      t.SeatClass,
		TotalSeats:     t.TotalSeats,
		AvailableSeats: t.AvailableSeats,
		Status:         t.Status,
	}
	if t.Route != nil {
		resp.RouteName = t.Route.Name
		resp.Origin = t.Route.Origin
		resp.Destination = t.Route.Destination
	}
	return resp
}

type PaginatedTrips struct {
	Trips      []TripResponse `json:"trips"`
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}
