package tickets

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) FindTicketBySeat(ctx context.Context, tripID uuid.UUID, seatNumber int) (*Ticket, error) {
	args := m.Called(ctx, tripID, seatNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Ticket), args.Error(1)
}

func (m *mockRepository) GetTripSnapshot(ctx context.Context, tripID uuid.UUID) (*TripSnapshot, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TripSnapshot), args.Error(1)
}

func (m *mockRepository) InsertTicket(ctx context.Context, ticket *Ticket) error {
	args := m.Called(ctx, ticket)
	if args.Error(0) == nil {
		ticket.ID = uuid.New()
		ticket.TicketNumber = 1042
	}
	return args.Error(0)
}

func (m *mockRepository) InsertPaymentTransaction(ctx context.Context, txn *PaymentTransaction) error {
	args := m.Called(ctx, txn)
	if args.Error(0) == nil {
		txn.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockRepository) RecomputeAvailableSeats(ctx context.Context, tripID uuid.UUID) error {
	args := m.Called(ctx, tripID)
	return args.Error(0)
}

func (m *mockRepository) GetTicketByID(ctx context.Context, id uuid.UUID) (*Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Ticket), args.Error(1)
}

func (m *mockRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, paymentStatus PaymentStatus, ticketStatus TicketStatus) error {
	args := m.Called(ctx, id, paymentStatus, ticketStatus)
	return args.Error(0)
}

func (m *mockRepository) FindTransactionByTicket(ctx context.Context, ticketID uuid.UUID) (*PaymentTransaction, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PaymentTransaction), args.Error(1)
}

func newBookingRequest(tripID, passengerID uuid.UUID) BookingRequest {
	return BookingRequest{
		TripID:        tripID.String(),
		PassengerID:   passengerID.String(),
		SeatNumber:    15,
		PaymentMethod: PaymentMethodCard,
	}
}

func scheduledTrip(tripID uuid.UUID) *TripSnapshot {
	return &TripSnapshot{
		ID:             tripID,
		Price:          25.00,
		SeatClass:      "economy",
		TotalSeats:     40,
		AvailableSeats: 10,
		Status:         "scheduled",
	}
}

func TestBook_Success_CardBooking(t *testing.T) {
	repo := new(mockRepository)
	service := NewService(repo, nil, nil, nil)

	ctx := context.Background()
	tripID := uuid.New()
	passengerID := uuid.New()

	repo.On("FindTicketBySeat", ctx, tripID, 15).Return(nil, nil)
	repo.On("GetTripSnapshot", ctx, tripID).Return(scheduledTrip(tripID), nil)
	repo.On("InsertTicket", ctx, mock.AnythingOfType("*tickets.Ticket")).Return(nil)
	repo.On("RecomputeAvailableSeats", ctx, tripID).Return(nil)

	resp, err := service.Book(ctx, newBookingRequest(tripID, passengerID))

	assert.NoError(t, err)
	if assert.NotNil(t, resp) {
		assert.Equal(t, 25.00, resp.PricePaid)
		assert.Equal(t, 15, resp.SeatNumber)
		assert.Equal(t, "economy", resp.SeatClass)
		assert.Equal(t, QRPayload(tripID, 15), resp.QRCodeData)
		assert.Equal(t, int64(1042), resp.TicketNumber)
		assert.NotEmpty(t, resp.TicketID)
	}

	// card bookings never create a payment transaction
	repo.AssertNotCalled(t, "InsertPaymentTransaction", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestBook_SeatTaken_FastFail(t *testing.T) {
	repo := new(mockRepository)
	service := NewService(repo, nil, nil, nil)

	ctx := context.Background()
	tripID := uuid.New()

	repo.On("FindTicketBySeat", ctx, tripID, 15).Return(&Ticket{ID: uuid.New()}, nil)

	resp, err := service.Book(ctx, newBookingRequest(tripID, uuid.New()))

	assert.ErrorIs(t, err, ErrSeatTaken)
	assert.Nil(t, resp)

	// the workflow short-circuits before touching the trip
	repo.AssertNotCalled(t, "GetTripSnapshot", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "InsertTicket", mock.Anything, mock.Anything)
}

func TestBook_SeatTaken_DuplicateKeyFromStore(t *testing.T) {
	repo := new(mockRepository)
	service := NewService(repo, nil, nil, nil)

	ctx := context.Background()
	tripID := uuid.New()

	// two concurrent bookings both pass the check; the store decides
	repo.On("FindTicketBySeat", ctx, tripID, 15).Return(nil, nil)
	repo.On("GetTripSnapshot", ctx, tripID).Return(scheduledTrip(tripID), nil)
	repo.On("InsertTicket", ctx, mock.AnythingOfType("*tickets.Ticket")).Return(gorm.ErrDuplicatedKey)

	resp, err := service.Book(ctx, newBookingRequest(tripID, uuid.New()))

	assert.ErrorIs(t, err, ErrSeatTaken)
	assert.Nil(t, resp)
	repo.AssertNotCalled(t, "RecomputeAvailableSeats", mock.Anything, mock.Anything)
}

func TestBook_TripNotFound(t *testing.T) {
	repo := new(mockRepository)
	service := NewService(repo, nil, nil, nil)

	ctx := context.Background()
	tripID := uuid.New()

	repo.On("FindTicketBySeat", ctx, tripID, 15).Return(nil, nil)
	repo.On("GetTripSnapshot", ctx, tripID).Return(nil, ErrTripNotFound)

	resp, err := service.Book(ctx, newBookingRequest(tripID, uuid.New()))

	assert.ErrorIs(t, err, ErrTripNotFound)
	assert.Nil(t, resp)
}

func TestBook_NoSeatsAvailable(t *testing.T) {
	repo := new(mockRepository)
	service := NewService(repo, nil, nil, nil)

	ctx := context.Background()
	tripID := uuid.New()

	full := scheduledTrip(tripID)
	full.AvailableSeats = 0

	repo.On("FindTicketBySeat", ctx, tripID, 15).Return(nil, nil)
	repo.On("GetTripSnapshot", ctx, tripID).Return(full, nil)

	resp, err := service.Book(ctx, newBookingRequest(tripID, uuid.New()))

	assert.ErrorIs(t, err, ErrNoSeatsAvailable)
	assert.Nil(t, resp)
	repo.AssertNotCalled(t, "InsertTicket", mock.Anything, mock.Anything)
}

func TestBook_CashPaid_CreatesTransaction(t *testing.T) {
	repo := new(mockRepository)
	service := NewService(repo, nil, nil, nil)

	ctx := context.Background()
	tripID := uuid.New()
	passengerID := uuid.New()

	repo.On("FindTicketBySeat", ctx, tripID, 15).Return(nil, nil)
	repo.On("GetTripSnapshot", ctx, tripID).Return(scheduledTrip(tripID), nil)
	repo.On("InsertTicket", ctx, mock.AnythingOfType("*tickets.Ticket")).Return(nil)
	repo.On("InsertPaymentTransaction", ctx, mock.MatchedBy(func(txn *PaymentTransaction) bool {
		return txn.Amount == 25.00 &&
			txn.Currency == TransactionCurrency &&
			txn.Status == TransactionStatusCompleted &&
			txn.PaymentMethod == PaymentMethodCash &&
			txn.TransactionID == "RCPT-778"
	})).Return(nil)
	repo.On("RecomputeAvailableSeats", ctx, tripID).Return(nil)

	req := newBookingRequest(tripID, passengerID)
	req.PaymentMethod = PaymentMethodCash
	req.PaymentStatus = string(PaymentStatusPaid)
	req.PaymentReference = "RCPT-778"

	resp, err := service.Book(ctx, req)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	repo.AssertExpectations(t)
}

func TestBook_CashPaid_GeneratesFallbackReference(t *testing.T) {
	repo := new(mockRepository)
	service := NewService(repo, nil, nil, nil)

	ctx := context.Background()
	tripID := uuid.New()

	repo.On("FindTicketBySeat", ctx, tripID, 15).Return(nil, nil)
	repo.On("GetTripSnapshot", ctx, tripID).Return(scheduledTrip(tripID), nil)
	repo.On("InsertTicket", ctx, mock.AnythingOfType("*tickets.Ticket")).Return(nil)
	repo.On("InsertPaymentTransaction", ctx, mock.MatchedBy(func(txn *PaymentTransaction) bool {
		return len(txn.TransactionID) > 4 && txn.TransactionID[:4] == "PAY-"
	})).Return(nil)
	repo.On("RecomputeAvailableSeats", ctx, tripID).Return(nil)

	req := newBookingRequest(tripID, uuid.New())
	req.PaymentMethod = PaymentMethodCash
	req.PaymentStatus = string(PaymentStatusPaid)

	_, err := service.Book(ctx, req)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestBook_CashPending_NoTransaction(t *testing.T) {
	repo := new(mockRepository)
	service := NewService(repo, nil, nil, nil)

	ctx := context.Background()
	tripID := uuid.New()

	repo.On("FindTicketBySeat", ctx, tripID, 15).Return(nil, nil)
	repo.On("GetTripSnapshot", ctx, tripID).Return(scheduledTrip(tripID), nil)
	repo.On("InsertTicket", ctx, mock.AnythingOfType("*tickets.Ticket")).Return(nil)
	repo.On("RecomputeAvailableSeats", ctx, tripID).Return(nil)

	req := newBookingRequest(tripID, uuid.New())
	req.PaymentMethod = PaymentMethodCash

	_, err := service.Book(ctx, req)

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "InsertPaymentTransaction", mock.Anything, mock.Anything)
}

func TestBook_CardPaid_NoTransaction(t *testing.T) {
	repo := new(mockRepository)
	service := NewService(repo, nil, nil, nil)

	ctx := context.Background()
	tripID := uuid.New()

	repo.On("FindTicketBySeat", ctx, tripID, 15).Return(nil, nil)
	repo.On("GetTripSnapshot", ctx, tripID).Return(scheduledTrip(tripID), nil)
	repo.On("InsertTicket", ctx, mock.MatchedBy(func(ticket *Ticket) bool {
		return ticket.Status == TicketStatusActive && ticket.PaymentStatus == PaymentStatusPaid
	})).Return(nil)
	repo.On("RecomputeAvailableSeats", ctx, tripID).Return(nil)

	req := newBookingRequest(tripID, uuid.New())
	req.PaymentStatus = string(PaymentStatusPaid)

	_, err := service.Book(ctx, req)

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "InsertPaymentTransaction", mock.Anything, mock.Anything)
}

func TestBook_UnknownPaymentStatusCoercedToPending(t *testing.T) {
	repo := new(mockRepository)
	service := NewService(repo, nil, nil, nil)

	ctx := context.Background()
	tripID := uuid.New()

	repo.On("FindTicketBySeat", ctx, tripID, 15).Return(nil, nil)
	repo.On("GetTripSnapshot", ctx, tripID).Return(scheduledTrip(tripID), nil)
	repo.On("InsertTicket", ctx, mock.MatchedBy(func(ticket *Ticket) bool {
		return ticket.PaymentStatus == PaymentStatusPending && ticket.Status == TicketStatusPending
	})).Return(nil)
	repo.On("RecomputeAvailableSeats", ctx, tripID).Return(nil)

	req := newBookingRequest(tripID, uuid.New())
	req.PaymentStatus = "settled"

	_, err := service.Book(ctx, req)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestBook_SeatClassFallsBackToTrip(t *testing.T) {
	repo := new(mockRepository)
	service := NewService(repo, nil, nil, nil)

	ctx := context.Background()
	tripID := uuid.New()

	trip := scheduledTrip(tripID)
	trip.SeatClass = "sleeper"

	repo.On("FindTicketBySeat", ctx, tripID, 15).Return(nil, nil)
	repo.On("GetTripSnapshot", ctx, tripID).Return(trip, nil)
	repo.On("InsertTicket", ctx, mock.MatchedBy(func(ticket *Ticket) bool {
		return ticket.SeatClass == "sleeper"
	})).Return(nil)
	repo.On("RecomputeAvailableSeats", ctx, tripID).Return(nil)

	resp, err := service.Book(ctx, newBookingRequest(tripID, uuid.New()))

	assert.NoError(t, err)
	assert.Equal(t, "sleeper", resp.SeatClass)
}

func TestBook_StoreFailureWrapsBookingError(t *testing.T) {
	repo := new(mockRepository)
	service := NewService(repo, nil, nil, nil)

	ctx := context.Background()
	tripID := uuid.New()
	storeErr := errors.New("connection reset")

	repo.On("FindTicketBySeat", ctx, tripID, 15).Return(nil, storeErr)

	resp, err := service.Book(ctx, newBookingRequest(tripID, uuid.New()))

	assert.Nil(t, resp)
	var bookingErr *BookingError
	if assert.ErrorAs(t, err, &bookingErr) {
		assert.Equal(t, "seat check", bookingErr.Step)
		assert.ErrorIs(t, err, storeErr)
	}
}

func TestBook_RecomputeFailureSurfaces(t *testing.T) {
	repo := new(mockRepository)
	service := NewService(repo, nil, nil, nil)

	ctx := context.Background()
	tripID := uuid.New()

	repo.On("FindTicketBySeat", ctx, tripID, 15).Return(nil, nil)
	repo.On("GetTripSnapshot", ctx, tripID).Return(scheduledTrip(tripID), nil)
	repo.On("InsertTicket", ctx, mock.AnythingOfType("*tickets.Ticket")).Return(nil)
	repo.On("RecomputeAvailableSeats", ctx, tripID).Return(errors.New("timeout"))

	resp, err := service.Book(ctx, newBookingRequest(tripID, uuid.New()))

	assert.Nil(t, resp)
	var bookingErr *BookingError
	if assert.ErrorAs(t, err, &bookingErr) {
		assert.Equal(t, "seat recompute", bookingErr.Step)
	}
}

func TestUpdateTicketStatus_InvalidStatus(t *testing.T) {
	repo := new(mockRepository)
	service := NewService(repo, nil, nil, nil)

	resp, err := service.UpdateTicketStatus(context.Background(), uuid.New(), "settled")

	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Nil(t, resp)
	repo.AssertNotCalled(t, "GetTicketByID", mock.Anything, mock.Anything)
}

func TestUpdateTicketStatus_TicketNotFound(t *testing.T) {
	repo := new(mockRepository)
	service := NewService(repo, nil, nil, nil)

	ctx := context.Background()
	ticketID := uuid.New()

	repo.On("GetTicketByID", ctx, ticketID).Return(nil, ErrTicketNotFound)

	resp, err := service.UpdateTicketStatus(ctx, ticketID, string(PaymentStatusPaid))

	assert.ErrorIs(t, err, ErrTicketNotFound)
	assert.Nil(t, resp)
}

func TestUpdateTicketStatus_PaidBackfillsTransaction(t *testing.T) {
	repo := new(mockRepository)
	service := NewService(repo, nil, nil, nil)

	ctx := context.Background()
	ticketID := uuid.New()
	tripID := uuid.New()

	ticket := &Ticket{
		ID:            ticketID,
		TripID:        tripID,
		PricePaid:     25.00,
		Status:        TicketStatusPending,
		PaymentStatus: PaymentStatusPending,
		PaymentMethod: PaymentMethodCash,
	}

	repo.On("GetTicketByID", ctx, ticketID).Return(ticket, nil)
	repo.On("UpdatePaymentStatus", ctx, ticketID, PaymentStatusPaid, TicketStatusActive).Return(nil)
	repo.On("FindTransactionByTicket", ctx, ticketID).Return(nil, nil)
	repo.On("InsertPaymentTransaction", ctx, mock.MatchedBy(func(txn *PaymentTransaction) bool {
		return txn.TicketID == ticketID &&
			txn.Amount == 25.00 &&
			txn.PaymentMethod == PaymentMethodCash &&
			txn.Status == TransactionStatusCompleted
	})).Return(nil)
	repo.On("RecomputeAvailableSeats", ctx, tripID).Return(nil)

	resp, err := service.UpdateTicketStatus(ctx, ticketID, string(PaymentStatusPaid))

	assert.NoError(t, err)
	if assert.NotNil(t, resp) {
		assert.Equal(t, string(PaymentStatusPaid), resp.PaymentStatus)
		assert.Equal(t, string(TicketStatusActive), resp.Status)
	}
	repo.AssertExpectations(t)
}

func TestUpdateTicketStatus_PaidIsIdempotentForTransactions(t *testing.T) {
	repo := new(mockRepository)
	service := NewService(repo, nil, nil, nil)

	ctx := context.Background()
	ticketID := uuid.New()

	ticket := &Ticket{
		ID:            ticketID,
		TripID:        uuid.New(),
		PricePaid:     25.00,
		Status:        TicketStatusActive,
		PaymentStatus: PaymentStatusPaid,
		PaymentMethod: PaymentMethodCash,
	}

	repo.On("GetTicketByID", ctx, ticketID).Return(ticket, nil)
	repo.On("UpdatePaymentStatus", ctx, ticketID, PaymentStatusPaid, TicketStatusActive).Return(nil)
	repo.On("FindTransactionByTicket", ctx, ticketID).Return(&PaymentTransaction{ID: uuid.New(), TicketID: ticketID}, nil)

	resp, err := service.UpdateTicketStatus(ctx, ticketID, string(PaymentStatusPaid))

	assert.NoError(t, err)
	assert.NotNil(t, resp)

	// a second paid update never duplicates the transaction
	repo.AssertNotCalled(t, "InsertPaymentTransaction", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "RecomputeAvailableSeats", mock.Anything, mock.Anything)
}

func TestUpdateTicketStatus_FailedKeepsTicketPending(t *testing.T) {
	repo := new(mockRepository)
	service := NewService(repo, nil, nil, nil)

	ctx := context.Background()
	ticketID := uuid.New()

	ticket := &Ticket{
		ID:            ticketID,
		TripID:        uuid.New(),
		PricePaid:     25.00,
		Status:        TicketStatusPending,
		PaymentStatus: PaymentStatusPending,
		PaymentMethod: PaymentMethodCard,
	}

	repo.On("GetTicketByID", ctx, ticketID).Return(ticket, nil)
	repo.On("UpdatePaymentStatus", ctx, ticketID, PaymentStatusFailed, TicketStatusPending).Return(nil)

	resp, err := service.UpdateTicketStatus(ctx, ticketID, string(PaymentStatusFailed))

	assert.NoError(t, err)
	assert.Equal(t, string(PaymentStatusFailed), resp.PaymentStatus)
	repo.AssertNotCalled(t, "FindTransactionByTicket", mock.Anything, mock.Anything)
}
