package repository

import (
	"context"
	"time"

	"github.com/Varma0099/lill-things/internal/domain/booking"
	"github.com/Varma0099/lill-things/internal/domain/slot"
	"github.com/Varma0099/lill-things/internal/infra"
	"github.com/Varma0099/lill-things/internal/infra/repository/converter"
	sqlc "github.com/Varma0099/lill-things/internal/infra/sqlc/generated"
	"github.com/Varma0099/lill-things/internal/pkg/pgconv"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/repository/booking.go -package=repositorymock

type BookingWriteQueries interface {
	InsertBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBookingParams) (string, error)
	GetBookingByCodeForUpdate(ctx context.Context, db sqlc.DBTX, confirmationCode string) (sqlc.Bookings, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
	MarkBookingNotificationSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkBookingNotificationSentParams) (int64, error)
	CompleteBookingsBefore(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteBookingsBeforeParams) (int64, error)
	IncrementNotificationAttempts(ctx context.Context, db sqlc.DBTX, codes []string) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// Create uses ON CONFLICT DO NOTHING on the code so a collision does not
// abort the surrounding transaction.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.queries.InsertBooking(ctx, r.db, converter.BookingToInsertParams(b))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("confirmation code already taken", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByCodeForUpdate(ctx context.Context, code booking.ConfirmationCode) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByCodeForUpdate(ctx, r.db, code.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return converter.BookingToDomain(row), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	n, err := r.queries.UpdateBookingStatus(ctx, r.db, sqlc.UpdateBookingStatusParams{
		ConfirmationCode: b.Code().String(),
		Status:           b.Status().String(),
		UpdatedAt:        pgconv.TimeToPgtype(b.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) MarkNotificationSent(ctx context.Context, code booking.ConfirmationCode, kind booking.NotificationKind, at time.Time) error {
	n, err := r.queries.MarkBookingNotificationSent(ctx, r.db, sqlc.MarkBookingNotificationSentParams{
		CustomerConfirmation: kind == booking.NotificationCustomerConfirmation,
		OwnerNotification:    kind == booking.NotificationOwner,
		UpdatedAt:            pgconv.TimeToPgtype(at),
		ConfirmationCode:     code.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification sent", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) CompleteBefore(ctx context.Context, day time.Time, at time.Time) (int64, error) {
	n, err := r.queries.CompleteBookingsBefore(ctx, r.db, sqlc.CompleteBookingsBeforeParams{
		UpdatedAt:  pgconv.TimeToPgtype(at),
		BeforeDate: pgconv.DateToPgtype(slot.TruncateDate(day)),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to complete past bookings", err)
	}
	return n, nil
}

func (r *BookingRepository) RecordNotificationAttempt(ctx context.Context, codes []booking.ConfirmationCode) error {
	if len(codes) == 0 {
		return nil
	}
	raw := make([]string, len(codes))
	for i, c := range codes {
		raw[i] = c.String()
	}
	if _, err := r.queries.IncrementNotificationAttempts(ctx, r.db, raw); err != nil {
		return infra.WrapRepoErr("failed to record notification attempt", err)
	}
	return nil
}
