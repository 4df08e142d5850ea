package tickets

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"busly/internal/notifications"
	"busly/internal/shared/constants"
	"busly/pkg/cache"
	"busly/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service interface defines the contract for the booking workflow
type Service interface {
	Book(ctx context.Context, req BookingRequest) (*BookingResponse, error)
	UpdateTicketStatus(ctx context.Context, ticketID uuid.UUID, paymentStatus string) (*TicketResponse, error)
	GetTicket(ctx context.Context, ticketID uuid.UUID) (*TicketResponse, error)
}

// service implements the Service interface. cache and producer may be nil;
// both are best-effort side channels, never part of booking correctness.
type service struct {
	repo     Repository
	cache    cache.Service
	producer notifications.Producer
	log      *logger.Logger
}

// NewService creates a new ticket service instance
func NewService(repo Repository, cacheService cache.Service, producer notifications.Producer, log *logger.Logger) Service {
	if log == nil {
		log = logger.GetDefault()
	}
	return &service{
		repo:     repo,
		cache:    cacheService,
		producer: producer,
		log:      log,
	}
}

// Book runs the seat-reservation workflow. The step order is fixed: the seat
// check must short-circuit before the trip fetch, and the seat recompute runs
// after the ticket insert regardless of the payment branch.
//
// The in-core seat check is a fast fail only. Under concurrency the partial
// unique index on live (trip_id, seat_number) pairs decides the winner, and
// the losing insert comes back as a duplicate-key error mapped to ErrSeatTaken.
func (s *service) Book(ctx context.Context, req BookingRequest) (*BookingResponse, error) {
	tripID, err := uuid.Parse(req.TripID)
	if err != nil {
		return nil, fmt.Errorf("invalid trip ID: %w", err)
	}
	passengerID, err := uuid.Parse(req.PassengerID)
	if err != nil {
		return nil, fmt.Errorf("invalid passenger ID: %w", err)
	}

	paymentStatus := CoercePaymentStatus(req.PaymentStatus)

	// Step 1: fail fast if a live ticket already holds the seat
	existing, err := s.repo.FindTicketBySeat(ctx, tripID, req.SeatNumber)
	if err != nil {
		return nil, newBookingError("seat check", err)
	}
	if existing != nil {
		return nil, ErrSeatTaken
	}

	// Step 2: fetch the trip and guard capacity
	trip, err := s.repo.GetTripSnapshot(ctx, tripID)
	if err != nil {
		if errors.Is(err, ErrTripNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, newBookingError("trip fetch", err)
	}
	if trip.AvailableSeats <= 0 {
		return nil, ErrNoSeatsAvailable
	}

	// Step 3: caller-supplied seat class wins, else the trip's
	seatClass := req.SeatClass
	if seatClass == "" {
		seatClass = trip.SeatClass
	}

	ticketStatus := TicketStatusPending
	if paymentStatus == PaymentStatusPaid {
		ticketStatus = TicketStatusActive
	}

	// Step 4: insert the ticket; price is copied from the trip at booking time
	ticket := &Ticket{
		TripID:           tripID,
		PassengerID:      passengerID,
		SeatNumber:       req.SeatNumber,
		SeatClass:        seatClass,
		PricePaid:        trip.Price,
		Status:           ticketStatus,
		PaymentStatus:    paymentStatus,
		PaymentMethod:    req.PaymentMethod,
		PaymentReference: req.PaymentReference,
		QRCodeData:       QRPayload(tripID, req.SeatNumber),
	}
	if err := s.repo.InsertTicket(ctx, ticket); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSeatTaken
		}
		return nil, newBookingError("ticket insert", err)
	}

	// Step 5: cash settled up front gets its transaction recorded immediately
	if req.PaymentMethod == PaymentMethodCash && paymentStatus == PaymentStatusPaid {
		reference := req.PaymentReference
		if reference == "" {
			reference = generateTransactionRef()
		}
		txn := &PaymentTransaction{
			TicketID:      ticket.ID,
			Amount:        trip.Price,
			Currency:      TransactionCurrency,
			PaymentMethod: PaymentMethodCash,
			Status:        TransactionStatusCompleted,
			TransactionID: reference,
		}
		if err := s.repo.InsertPaymentTransaction(ctx, txn); err != nil {
			return nil, newBookingError("payment transaction insert", err)
		}
		s.log.LogPaymentRecorded(ctx, ticket.ID.String(), reference, trip.Price)
	}

	// Step 6: recompute the trip's seat count from live tickets
	if err := s.repo.RecomputeAvailableSeats(ctx, tripID); err != nil {
		return nil, newBookingError("seat recompute", err)
	}

	s.invalidateTripCache(ctx)
	s.publishEvent(ctx, notifications.EventTicketIssued, ticket)
	s.log.LogTicketIssued(ctx, ticket.ID.String(), tripID.String(), req.SeatNumber)

	return &BookingResponse{
		TicketID:     ticket.ID.String(),
		TicketNumber: ticket.TicketNumber,
		TripID:       tripID.String(),
		SeatNumber:   req.SeatNumber,
		SeatClass:    seatClass,
		PricePaid:    trip.Price,
		QRCodeData:   ticket.QRCodeData,
	}, nil
}

// UpdateTicketStatus mutates a ticket's payment status. Moving to paid
// backfills the payment transaction if none exists yet; transaction creation
// is idempotent per ticket, the seat recompute is re-triggered whenever a
// transaction is actually created.
func (s *service) UpdateTicketStatus(ctx context.Context, ticketID uuid.UUID, paymentStatus string) (*TicketResponse, error) {
	status := PaymentStatus(paymentStatus)
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	ticket, err := s.repo.GetTicketByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	ticketStatus := TicketStatusPending
	if status == PaymentStatusPaid {
		ticketStatus = TicketStatusActive
	}

	if err := s.repo.UpdatePaymentStatus(ctx, ticketID, status, ticketStatus); err != nil {
		return nil, err
	}
	ticket.PaymentStatus = status
	ticket.Status = ticketStatus

	if status == PaymentStatusPaid {
		existing, err := s.repo.FindTransactionByTicket(ctx, ticketID)
		if err != nil {
			return nil, fmt.Errorf("transaction lookup failed: %w", err)
		}
		if existing == nil {
			reference := generateTransactionRef()
			txn := &PaymentTransaction{
				TicketID:      ticketID,
				Amount:        ticket.PricePaid,
				Currency:      TransactionCurrency,
				PaymentMethod: PaymentMethodCash,
				Status:        TransactionStatusCompleted,
				TransactionID: reference,
			}
			if err := s.repo.InsertPaymentTransaction(ctx, txn); err != nil {
				return nil, fmt.Errorf("transaction insert failed: %w", err)
			}
			if err := s.repo.RecomputeAvailableSeats(ctx, ticket.TripID); err != nil {
				return nil, fmt.Errorf("seat recompute failed: %w", err)
			}
			s.log.LogPaymentRecorded(ctx, ticketID.String(), reference, ticket.PricePaid)
			s.invalidateTripCache(ctx)
			s.publishEvent(ctx, notifications.EventTicketPaid, ticket)
		}
	}

	resp := ticket.ToResponse()
	return &resp, nil
}

func (s *service) GetTicket(ctx context.Context, ticketID uuid.UUID) (*TicketResponse, error) {
	ticket, err := s.repo.GetTicketByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	resp := ticket.ToResponse()
	return &resp, nil
}

// invalidateTripCache drops cached trip listings after a seat count change.
// Failures are logged, never surfaced.
func (s *service) invalidateTripCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, constants.CacheKeyTripPattern); err != nil {
		s.log.Warn("trip cache invalidation failed", "error", err.Error())
	}
}

// publishEvent emits a ticket event to Kafka, best effort.
func (s *service) publishEvent(ctx context.Context, eventType notifications.EventType, ticket *Ticket) {
	if s.producer == nil {
		return
	}
	event := &notifications.TicketEvent{
		Type:        eventType,
		TicketID:    ticket.ID,
		TripID:      ticket.TripID,
		PassengerID: ticket.PassengerID,
		SeatNumber:  ticket.SeatNumber,
		Amount:      ticket.PricePaid,
		Currency:    TransactionCurrency,
		OccurredAt:  time.Now(),
	}
	if err := s.producer.PublishTicketEvent(ctx, event); err != nil {
		s.log.Warn("ticket event publish failed",
			"type", string(eventType),
			"ticket_id", ticket.ID.String(),
			"error", err.Error())
	}
}

// generateTransactionRef builds a fallback transaction reference. The random
// suffix keeps concurrent bookings from colliding on wall clock alone.
func generateTransactionRef() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return fmt.Sprintf("PAY-%d", time.Now().UnixNano())
	}
	return fmt.Sprintf("PAY-%d-%06d", time.Now().UnixNano(), n.Int64())
}
