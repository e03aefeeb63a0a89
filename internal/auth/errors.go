package auth

import "errors"

var (
	// ErrMissingFields is returned when a required request field is empty.
	ErrMissingFields = errors.New("missing required fields")
	// ErrAccountExists is returned when registering an email that is already taken.
	ErrAccountExists = errors.New("account already exists")
	// ErrInvalidEmail is returned when no account matches the given email at login.
	ErrInvalidEmail = errors.New("invalid email")
	// ErrInvalidPassword is returned when the password does not match the stored hash.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrAccountNotFound is returned when the referenced account does not exist.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAlreadyVerified is returned when requesting a verification code for a verified account.
	ErrAlreadyVerified = errors.New("account already verified")
	// ErrInvalidCode is returned when the submitted OTP does not match the stored one.
	ErrInvalidCode = errors.New("invalid otp")
	// ErrExpiredCode is returned when the submitted OTP is past its expiry.
	ErrExpiredCode = errors.New("otp expired")
	// ErrDeliveryFailed is returned when the OTP email could not be sent.
	ErrDeliveryFailed = errors.New("failed to send email")
	// ErrInvalidToken is returned when a session token fails signature or expiry checks.
	ErrInvalidToken = errors.New("invalid session token")
)
