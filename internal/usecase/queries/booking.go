package queries

import (
	"context"

	"github.com/Varma0099/lill-things/internal/domain/booking"
	"github.com/Varma0099/lill-things/internal/domain/slot"
	"github.com/Varma0099/lill-things/internal/infra"
	"github.com/Varma0099/lill-things/internal/pkg/errs"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

var ErrInvalidCursor = errs.New("invalid cursor")

type BookingReadStore interface {
	FindByCode(ctx context.Context, code booking.ConfirmationCode) (*BookingView, error)
	// List returns up to limit bookings newest first, strictly after the cursor position when given.
	List(ctx context.Context, filter BookingFilter, after *CursorPosition, limit int32) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByCode(ctx context.Context, code string) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByCode(ctx context.Context, rawCode string) (*BookingView, error) {
	code, err := booking.ParseConfirmationCode(rawCode)
	if err != nil {
		// A malformed code can never exist.
		return nil, errs.ErrBookingNotFound
	}
	bv, err := q.store.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}
	return bv, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	limit = ValidateLimit(limit)
	if filter.Status != "" && !booking.Status(filter.Status).IsValid() {
		return nil, nil, errs.Mark(booking.ErrInvalidStatus, errs.ErrValidation)
	}
	if filter.TimeSlot != "" {
		ts, err := slot.ParseTimeSlot(filter.TimeSlot)
		if err != nil {
			return nil, nil, errs.Mark(err, errs.ErrValidation)
		}
		filter.TimeSlot = ts.String()
	}

	var after *CursorPosition
	if cursor != nil && cursor.After != "" {
		pos, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, errs.Mark(ErrInvalidCursor, errs.ErrValidation)
		}
		after = pos
	}

	rows, err := q.store.List(ctx, filter, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ConfirmationCode)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
