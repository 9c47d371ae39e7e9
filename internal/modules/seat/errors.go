package seat

import "errors"

var (
	ErrNotFound      = errors.New("seat not found")
	ErrAlreadyBooked = errors.New("seat is already booked")
)
