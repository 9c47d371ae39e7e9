package airline

import "errors"

var (
	ErrNotFound      = errors.New("airline not found")
	ErrDuplicateCode = errors.New("airline code already exists")
)
