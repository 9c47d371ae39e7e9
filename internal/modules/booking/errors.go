package booking

import (
	"errors"
	"fmt"
)

var (
	ErrFlightNotFound  = errors.New("flight not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrEmptyParty      = errors.New("adult, child and infant counts must all be positive")
	ErrPartyMismatch   = errors.New("passenger list does not match the party size")
	ErrAlreadyPaid     = errors.New("booking is already paid")
	ErrSeatTaken       = errors.New("one or more seats are already booked")
	ErrChargeFailed    = errors.New("payment was declined by the provider")
)

// InvalidInputError reports a payment request whose fields do not fit the
// chosen method, naming the method so the client knows which rule fired.
type InvalidInputError struct {
	Method string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input for %s: %s", e.Method, e.Reason)
}
