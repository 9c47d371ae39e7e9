package auth

import "errors"

var (
	ErrEmailTaken         = errors.New("email or phone number already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotVerified        = errors.New("account is not verified yet")
	ErrAlreadyVerified    = errors.New("account is already verified")
	ErrInvalidOTP         = errors.New("otp is invalid or has expired")
	ErrInvalidResetToken  = errors.New("reset token is invalid")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongPassword      = errors.New("current password is incorrect")
)
