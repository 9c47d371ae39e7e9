package promotion

import "errors"

var (
	ErrInvalidDiscount = errors.New("discount must be a fraction between 0 and 1 (exclusive)")
	ErrInvalidPeriod   = errors.New("promotion end date must not be before its start date")
	ErrNotFound        = errors.New("promotion not found")
)
