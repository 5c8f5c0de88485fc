package shared

import (
	"time"

	"github.com/Varma0099/lill-things/internal/domain/booking"

	"github.com/google/uuid"
)

// ReserveResult reports the outcome of a capacity check-and-take. SpotsLeft is
// the post-reservation value when accepted and the current value otherwise;
// a closed slot reports zero.
type ReserveResult struct {
	Accepted  bool
	SpotsLeft int
}

// IdempotencyClaim is what a request stores when it takes an Idempotency-Key.
type IdempotencyClaim struct {
	Key         uuid.UUID
	Endpoint    string
	RequestHash string
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// IdempotencyRecord is a stored key. Result is empty until the request that
// claimed it has committed a booking.
type IdempotencyRecord struct {
	Key         uuid.UUID
	Endpoint    string
	RequestHash string
	Result      booking.ConfirmationCode
	ExpiresAt   time.Time
}

func (r *IdempotencyRecord) Completed() bool {
	return r.Result != ""
}
