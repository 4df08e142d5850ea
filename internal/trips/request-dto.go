package trips

type TripSearchQuery struct {
	Page        int    `form:"page" binding:"omitempty,min=1"`
	Limit       int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Origin      string `form:"origin"`
	Destination string `form:"destination"`
	Date        string `form:"date"` // YYYY-MM-DD
	Status      string `form:"status" binding:"omitempty,oneof=scheduled departed completed cancelled"`
}

type CreateRouteRequest struct {
	Name        string  `json:"name" binding:"required,min=3,max=255"`
	Origin      string  `json:"origin" binding:"required,min=2,max=255"`
	Destination string  `json:"destination" binding:"required,min=2,max=255"`
	DistanceKM  float64 `json:"distance_km" binding:"omitempty,min=0"`
}

type CreateTripRequest struct {
	RouteID       string  `json:"route_id" binding:"required,uuid"`
	DepartureTime string  `json:"departure_time" binding:"required"` // RFC3339
	Price         float64 `json:"price" binding:"required,min=0"`
	SeatClass     string  `json:"seat_class" binding:"omitempty,oneof=economy business sleeper"`
	TotalSeats    int     `json:"total_seats" binding:"required,min=1,max=100"`
}
