package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Catalog errors
	ErrActivityNotFound = errors.New("activity not found")

	// Slot errors
	ErrSlotNotFound          = errors.New("slot not found")
	ErrSlotFull              = errors.New("slot is full")
	ErrCapacityBelowBookings = errors.New("capacity cannot be lower than current bookings")

	// Booking errors
	ErrBookingNotFound          = errors.New("booking not found")
	ErrConfirmationCollision    = errors.New("confirmation code collision")
	ErrInvalidStatusTransition  = errors.New("invalid booking status transition")
	ErrNotificationDeliveryFail = errors.New("notification delivery failed")
	ErrIdempotencyKeyReused     = errors.New("idempotency key reused with a different request")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors
	ErrValidation = errors.New("validation failed")

	// Operation errors
	ErrStorageUnavailable      = errors.New("storage unavailable")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrInternal                = errors.New("internal error")
)
