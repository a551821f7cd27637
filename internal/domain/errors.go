package domain

import "errors"

var (
	ErrInvalidAccountNumber = errors.New("account number must be 6-20 digits")
	ErrInvalidIfscSuffix    = errors.New("ifsc suffix must be 7 letters or digits")
	ErrConsentRequired      = errors.New("consent to share bank details is required")
	ErrInvalidAmount        = errors.New("amount must be a positive number")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrInvalidReceiver      = errors.New("receiver is required")

	ErrUnknownBank    = errors.New("unknown bank")
	ErrNoBankSelected = errors.New("select a bank first")
	ErrNoSession      = errors.New("no active session")

	ErrInvalidCredentials = errors.New("invalid unique id or password")
	ErrInvalidSignup      = errors.New("name and phone are required")
	ErrWeakPassword       = errors.New("password must be 8-15 chars with upper, lower, digit and special character")
	ErrDuplicateUser      = errors.New("unique id already exists")
	ErrInvalidPin         = errors.New("pin must be 4 digits")
	ErrIncorrectPin       = errors.New("incorrect pin")
	ErrPinNotSet          = errors.New("pin not set")
	ErrPinLocked          = errors.New("too many attempts, pin locked for 5 minutes")
)
