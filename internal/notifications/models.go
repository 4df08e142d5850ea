package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventTicketIssued EventType = "TICKET_ISSUED"
	EventTicketPaid   EventType = "TICKET_PAID"
)

// TicketEvent is the message published to Kafka whenever a ticket is issued
// or settled. Downstream consumers (SMS/email senders, analytics) key off Type.
type TicketEvent struct {
	Type        EventType `json:"type"`
	TicketID    uuid.UUID `json:"ticket_id"`
	TripID      uuid.UUID `json:"trip_id"`
	PassengerID uuid.UUID `json:"passenger_id"`
	SeatNumber  int       `json:"seat_number"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func (e *TicketEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// GetPartitionKey routes all events for one trip to the same partition so
// consumers observe per-trip ordering.
func (e *TicketEvent) GetPartitionKey() string {
	return e.TripID.String()
}
