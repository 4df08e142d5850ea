package tickets

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestQRPayload_Deterministic(t *testing.T) {
	tripID := uuid.New()

	first := QRPayload(tripID, 15)
	second := QRPayload(tripID, 15)

	assert.Equal(t, first, second)
	assert.Equal(t, fmt.Sprintf("TKT-%s-15", tripID), first)
}

func TestQRPayload_RecomputableFromTicketFields(t *testing.T) {
	ticket := Ticket{
		TripID:     uuid.New(),
		SeatNumber: 7,
	}
	ticket.QRCodeData = QRPayload(ticket.TripID, ticket.SeatNumber)

	assert.Equal(t, QRPayload(ticket.TripID, ticket.SeatNumber), ticket.QRCodeData)
}

func TestCoercePaymentStatus(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  PaymentStatus
	}{
		{"paid passes through", "paid", PaymentStatusPaid},
		{"pending passes through", "pending", PaymentStatusPending},
		{"failed passes through", "failed", PaymentStatusFailed},
		{"refunded passes through", "refunded", PaymentStatusRefunded},
		{"empty coerced", "", PaymentStatusPending},
		{"unknown coerced", "settled", PaymentStatusPending},
		{"case sensitive", "PAID", PaymentStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoercePaymentStatus(tt.input))
		})
	}
}

func TestPaymentStatusIsValid(t *testing.T) {
	assert.True(t, PaymentStatusPaid.IsValid())
	assert.True(t, PaymentStatusRefunded.IsValid())
	assert.False(t, PaymentStatus("settled").IsValid())
	assert.False(t, PaymentStatus("").IsValid())
}
