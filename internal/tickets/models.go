package tickets

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type TicketStatus string

const (
	TicketStatusActive    TicketStatus = "active"
	TicketStatusPending   TicketStatus = "pending"
	TicketStatusCancelled TicketStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// IsValid checks if the payment status is one of the accepted values
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// CoercePaymentStatus returns the supplied status if valid, otherwise pending.
func CoercePaymentStatus(raw string) PaymentStatus {
	status := PaymentStatus(raw)
	if status.IsValid() {
		return status
	}
	return PaymentStatusPending
}

const (
	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"
)

// QRPayload builds the scannable payload for a ticket. It is deterministic so
// a verifier can recompute it from the ticket's trip and seat alone.
func QRPayload(tripID uuid.UUID, seatNumber int) string {
	return fmt.Sprintf("TKT-%s-%d", tripID, seatNumber)
}

// Ticket is one passenger's reservation of one seat on one trip.
// TicketNumber is assigned by the store on insert; handlers never set it.
type Ticket struct {
	ID               uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TicketNumber     int64         `gorm:"autoIncrement;uniqueIndex" json:"ticket_number"`
	TripID           uuid.UUID     `gorm:"type:uuid;index;not null" json:"trip_id"`
	PassengerID      uuid.UUID     `gorm:"type:uuid;index;not null" json:"passenger_id"`
	SeatNumber       int           `gorm:"not null;check:seat_number > 0" json:"seat_number"`
	SeatClass        string        `gorm:"type:varchar(20);not null" json:"seat_class"`
	PricePaid        float64       `gorm:"not null" json:"price_paid"`
	Status           TicketStatus  `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PaymentStatus    PaymentStatus `gorm:"type:varchar(20);default:'pending'" json:"payment_status"`
	PaymentMethod    string        `gorm:"type:varchar(50);not null" json:"payment_method"`
	PaymentReference string        `gorm:"type:varchar(255)" json:"payment_reference,omitempty"`
	QRCodeData       string        `gorm:"not null" json:"qr_code_data"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// PaymentTransaction records a completed settlement against a ticket.
type PaymentTransaction struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TicketID      uuid.UUID `gorm:"type:uuid;index;not null" json:"ticket_id"`
	Amount        float64   `gorm:"not null" json:"amount"`
	Currency      string    `gorm:"type:varchar(3);default:'USD'" json:"currency"`
	PaymentMethod string    `gorm:"type:varchar(50)" json:"payment_method"`
	Status        string    `gorm:"type:varchar(20);check:status IN ('pending', 'completed', 'failed', 'refunded');default:'completed'" json:"status"`
	TransactionID string    `gorm:"unique" json:"transaction_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

const (
	TransactionStatusCompleted = "completed"

	TransactionCurrency = "USD"
)

// TableName sets the table name for Ticket
func (Ticket) TableName() string {
	return "tickets"
}

// TableName sets the table name for PaymentTransaction
func (PaymentTransaction) TableName() string {
	return "payment_transactions"
}
