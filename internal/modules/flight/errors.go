package flight

import "errors"

var (
	ErrNotFound          = errors.New("flight not found")
	ErrDuplicateCode     = errors.New("flight code already exists")
	ErrInvalidSchedule   = errors.New("arrival time must be after departure time")
	ErrAirlineNotFound   = errors.New("airline not found")
	ErrTerminalNotFound  = errors.New("terminal not found")
	ErrPromotionNotFound = errors.New("promotion not found")
)
