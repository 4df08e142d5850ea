package tickets

import (
	"errors"
	"fmt"
)

var (
	ErrSeatTaken        = errors.New("seat is already taken for this trip")
	ErrTripNotFound     = errors.New("trip not found")
	ErrNoSeatsAvailable = errors.New("no seats available for this trip")
	ErrInvalidStatus    = errors.New("invalid payment status")
	ErrTicketNotFound   = errors.New("ticket not found")
)

// BookingError wraps a store failure that aborted the booking workflow,
// recording which step failed. Business-rule failures (seat taken, no seats)
// use the sentinel errors above instead.
type BookingError struct {
	Step string
	Err  error
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("booking failed at %s: %v", e.Step, e.Err)
}

func (e *BookingError) Unwrap() error {
	return e.Err
}

func newBookingError(step string, err error) *BookingError {
	return &BookingError{Step: step, Err: err}
}
