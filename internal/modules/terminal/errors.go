package terminal

import "errors"

var (
	ErrNotFound        = errors.New("terminal not found")
	ErrAirportNotFound = errors.New("airport not found")
)
