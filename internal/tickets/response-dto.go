package tickets

import "time"

type BookingResponse struct {
	TicketID     string  `json:"ticket_id"`
	TicketNumber int64   `json:"ticket_number"`
	TripID       string  `json:"trip_id"`
	SeatNumber   int     `json:"seat_number"`
	SeatClass    string  `json:"seat_class"`
	PricePaid    float64 `json:"price_paid"`
	QRCodeData   string  `json:"qr_code_data"`
}

type TicketResponse struct {
	ID               string    `json:"id"`
	TicketNumber     int64     `json:"ticket_number"`
	TripID           string    `json:"trip_id"`
	PassengerID      string    `json:"passenger_id"`
	SeatNumber       int       `json:"seat_number"`
	SeatClass        string    `json:"seat_class"`
	PricePaid        float64   `json:"price_paid"`
	Status           string    `json:"status"`
	PaymentStatus    string    `json:"payment_status"`
	PaymentMethod    string    `json:"payment_method"`
	PaymentReference string    `json:"payment_reference,omitempty"`
	QRCodeData       string    `json:"qr_code_data"`
	CreatedAt        time.Time `json:"created_at"`
}

// ToResponse converts a Ticket to its API shape
func (t *Ticket) ToResponse() TicketResponse {
	return TicketResponse{
		ID:               t.ID.String(),
		TicketNumber:     t.TicketNumber,
		TripID:           t.TripID.String(),
		PassengerID:      t.PassengerID.String(),
		SeatNumber:       t.SeatNumber,
		SeatClass:        t.SeatClass,
		PricePaid:        t.PricePaid,
		Status:           string(t.Status),
		PaymentStatus:    string(t.PaymentStatus),
		PaymentMethod:    t.PaymentMethod,
		PaymentReference: t.PaymentReference,
		QRCodeData:       t.QRCodeData,
		CreatedAt:        t.CreatedAt,
	}
}
