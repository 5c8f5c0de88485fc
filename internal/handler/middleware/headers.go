package middleware

const (
	HeaderRetryAfter = "Retry-After"
	// HeaderIdempotencyKey lets a client retry POST /api/bookings safely.
	HeaderIdempotencyKey = "Idempotency-Key"
	// HeaderIdempotentReplayed marks a response served from a stored booking.
	HeaderIdempotentReplayed = "Idempotent-Replayed"
)
