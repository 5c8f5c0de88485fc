package readstore

import (
	"context"
	"time"

	"github.com/Varma0099/lill-things/internal/domain/activity"
	"github.com/Varma0099/lill-things/internal/domain/booking"
	"github.com/Varma0099/lill-things/internal/infra"
	"github.com/Varma0099/lill-things/internal/infra/repository/converter"
	sqlc "github.com/Varma0099/lill-things/internal/infra/sqlc/generated"
	"github.com/Varma0099/lill-things/internal/pkg/pgconv"
	"github.com/Varma0099/lill-things/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	GetBookingByCode(ctx context.Context, db sqlc.DBTX, confirmationCode string) (sqlc.Bookings, error)
	ListBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.Bookings, error)
	ListBookingsMissingNotifications(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsMissingNotificationsParams) ([]sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByCode(ctx context.Context, code booking.ConfirmationCode) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByCode(ctx, r.db, code.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by code", err)
	}
	return queries.NewBookingView(converter.BookingToDomain(row)), nil
}

func (r *BookingReadStore) List(ctx context.Context, filter queries.BookingFilter, after *queries.CursorPosition, limit int32) ([]*queries.BookingView, error) {
	params := sqlc.ListBookingsParams{
		ActivityName: pgconv.StringToNullablePgtype(activity.NormalizeName(filter.Activity)),
		TimeSlot:     pgconv.StringToNullablePgtype(filter.TimeSlot),
		Status:       pgconv.StringToNullablePgtype(filter.Status),
		BookingDate:  pgconv.DatePtrToPgtype(filter.Date),
		RowLimit:     limit,
	}
	if after != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(after.CreatedAt)
		params.AfterCode = pgtype.Text{String: after.Code, Valid: true}
	}

	rows, err := r.queries.ListBookings(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.NewBookingView(converter.BookingToDomain(row)))
	}
	return views, nil
}

// MissingNotifications feeds the resend job. Bookings that already used up
// maxAttempts resends are left out so they cannot crowd newer ones out of a batch.
func (r *BookingReadStore) MissingNotifications(ctx context.Context, cutoff time.Time, maxAttempts, limit int) ([]*booking.Booking, error) {
	rows, err := r.queries.ListBookingsMissingNotifications(ctx, r.db, sqlc.ListBookingsMissingNotificationsParams{
		CreatedBefore: pgconv.TimeToPgtype(cutoff),
		MaxAttempts:   pgconv.IntToInt32(maxAttempts),
		RowLimit:      pgconv.IntToInt32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings missing notifications", err)
	}
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.BookingToDomain(row))
	}
	return out, nil
}
