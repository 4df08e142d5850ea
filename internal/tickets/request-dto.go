package tickets

type BookingRequest struct {
	TripID           string `json:"trip_id" binding:"required,uuid"`
	PassengerID      string `json:"passenger_id" binding:"required,uuid"`
	SeatNumber       int    `json:"seat_number" binding:"required,min=1"`
	SeatClass        string `json:"seat_class" binding:"omitempty,oneof=economy business sleeper"`
	PaymentMethod    string `json:"payment_method" binding:"required"`
	PaymentReference string `json:"payment_reference"`
	PaymentStatus    string `json:"payment_status" binding:"omitempty"`
}

type UpdateTicketStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}
