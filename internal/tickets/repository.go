package tickets

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TripSnapshot is the slice of a trip the booking workflow needs. Read via a
// raw table query to keep this package decoupled from the trips package.
type TripSnapshot struct {
	ID             uuid.UUID `gorm:"column:id"`
	Price          float64   `gorm:"column:price"`
	SeatClass      string    `gorm:"column:seat_class"`
	TotalSeats     int       `gorm:"column:total_seats"`
	AvailableSeats int       `gorm:"column:available_seats"`
	Status         string    `gorm:"column:status"`
}

type Repository interface {
	// Booking workflow
	FindTicketBySeat(ctx context.Context, tripID uuid.UUID, seatNumber int) (*Ticket, error)
	GetTripSnapshot(ctx context.Context, tripID uuid.UUID) (*TripSnapshot, error)
	InsertTicket(ctx context.Context, ticket *Ticket) error
	InsertPaymentTransaction(ctx context.Context, txn *PaymentTransaction) error
	RecomputeAvailableSeats(ctx context.Context, tripID uuid.UUID) error

	// Status updates and retrieval
	GetTicketByID(ctx context.Context, id uuid.UUID) (*Ticket, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, paymentStatus PaymentStatus, ticketStatus TicketStatus) error
	FindTransactionByTicket(ctx context.Context, ticketID uuid.UUID) (*PaymentTransaction, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindTicketBySeat returns the live ticket holding a seat, or nil if the seat
// is free. Only active and pending tickets block a seat; cancelled ones do not.
func (r *repository) FindTicketBySeat(ctx context.Context, tripID uuid.UUID, seatNumber int) (*Ticket, error) {
	var ticket Ticket
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND seat_number = ? AND status IN ?",
			tripID, seatNumber, []TicketStatus{TicketStatusActive, TicketStatusPending}).
		First(&ticket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *repository) GetTripSnapshot(ctx context.Context, tripID uuid.UUID) (*TripSnapshot, error) {
	var snapshot TripSnapshot
	err := r.db.WithContext(ctx).
		Table("trips").
		Select("id, price, seat_class, total_seats, available_seats, status").
		Where("id = ?", tripID).
		Take(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	return &snapshot, nil
}

// InsertTicket creates the ticket row. The partial unique index on
// (trip_id, seat_number) over live tickets is the authority for seat
// exclusivity; a losing concurrent insert surfaces gorm.ErrDuplicatedKey.
func (r *repository) InsertTicket(ctx context.Context, ticket *Ticket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *repository) InsertPaymentTransaction(ctx context.Context, txn *PaymentTransaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

// RecomputeAvailableSeats recounts non-cancelled tickets for the trip and
// rewrites available_seats from scratch. Idempotent by construction.
func (r *repository) RecomputeAvailableSeats(ctx context.Context, tripID uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE trips
		SET available_seats = GREATEST(
			total_seats - (
				SELECT COUNT(*) FROM tickets
				WHERE tickets.trip_id = trips.id AND tickets.status <> 'cancelled'
			), 0),
		    updated_at = NOW()
		WHERE id = ?`, tripID).Error
}

func (r *repository) GetTicketByID(ctx context.Context, id uuid.UUID) (*Ticket, error) {
	var ticket Ticket
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&ticket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *repository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, paymentStatus PaymentStatus, ticketStatus TicketStatus) error {
	result := r.db.WithContext(ctx).
		Model(&Ticket{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment_status": paymentStatus,
			"status":         ticketStatus,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTicketNotFound
	}
	return nil
}

// FindTransactionByTicket returns nil when no transaction references the ticket.
func (r *repository) FindTransactionByTicket(ctx context.Context, ticketID uuid.UUID) (*PaymentTransaction, error) {
	var txn PaymentTransaction
	err := r.db.WithContext(ctx).Where("ticket_id = ?", ticketID).First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}
