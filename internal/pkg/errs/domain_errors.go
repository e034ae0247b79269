package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidInput        = errors.New("invalid reservation input")
	ErrInvalidStatus       = errors.New("invalid reservation status")

	// Storage errors
	ErrStoreConflict  = errors.New("concurrent store modification")
	ErrCorruptedState = errors.New("persisted state is corrupted")
	ErrStoreFailed    = errors.New("store operation failed")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")

	// Mail configuration errors
	ErrMailConfigIncomplete = errors.New("mail configuration incomplete")
)
