//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/Varma0099/lill-things/internal/domain/booking"
	"github.com/Varma0099/lill-things/internal/infra"
	"github.com/Varma0099/lill-things/internal/pkg/errs"
	"github.com/Varma0099/lill-things/internal/usecase/queries"
	queriesmock "github.com/Varma0099/lill-things/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func bookingViews(n int, start time.Time) []*queries.BookingView {
	out := make([]*queries.BookingView, 0, n)
	for i := range n {
		out = append(out, &queries.BookingView{
			ConfirmationCode: "LT2030AAAAA" + string(rune('A'+i)),
			Status:           "confirmed",
			CreatedAt:        start.Add(-time.Duration(i) * time.Minute),
		})
	}
	return out
}

func TestBookingQueries_GetByCode(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes the code before lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		want := &queries.BookingView{ConfirmationCode: "LT2030K7Q2ZD"}
		store.EXPECT().FindByCode(ctx, booking.ConfirmationCode("LT2030K7Q2ZD")).Return(want, nil)

		got, err := queries.NewBookingQueries(store).GetByCode(ctx, " lt2030k7q2zd ")
		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("malformed code is not found without a lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)

		_, err := queries.NewBookingQueries(store).GetByCode(ctx, "BOOKING-1")
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})

	t.Run("unknown code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindByCode(ctx, gomock.Any()).Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := queries.NewBookingQueries(store).GetByCode(ctx, "LT2030ZZZZZZ")
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})
}

func TestBookingQueries_List(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("returns a cursor when more rows exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		rows := bookingViews(3, start)
		store.EXPECT().List(ctx, queries.BookingFilter{}, (*queries.CursorPosition)(nil), int32(3)).Return(rows, nil)

		got, next, err := queries.NewBookingQueries(store).List(ctx, queries.BookingFilter{}, nil, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.NotNil(t, next)

		pos, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ConfirmationCode, pos.Code)
		assert.True(t, rows[1].CreatedAt.Equal(pos.CreatedAt))
	})

	t.Run("last page has no cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().List(ctx, gomock.Any(), gomock.Any(), int32(21)).Return(bookingViews(4, start), nil)

		got, next, err := queries.NewBookingQueries(store).List(ctx, queries.BookingFilter{}, nil, 0)
		require.NoError(t, err)
		assert.Len(t, got, 4)
		assert.Nil(t, next)
	})

	t.Run("decodes the cursor and canonicalizes the time slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)

		after := queries.EncodeAfterCursor(start, "LT2030AAAAAB")
		store.EXPECT().
			List(ctx, queries.BookingFilter{TimeSlot: "2:00 PM", Status: "cancelled"}, gomock.Any(), int32(11)).
			DoAndReturn(func(_ context.Context, _ queries.BookingFilter, pos *queries.CursorPosition, _ int32) ([]*queries.BookingView, error) {
				require.NotNil(t, pos)
				assert.Equal(t, "LT2030AAAAAB", pos.Code)
				assert.True(t, start.Equal(pos.CreatedAt))
				return nil, nil
			})

		got, next, err := queries.NewBookingQueries(store).List(ctx,
			queries.BookingFilter{TimeSlot: "2:00 pm", Status: "cancelled"},
			&queries.Cursor{After: after}, 10)
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Nil(t, next)
	})

	invalid := []struct {
		name   string
		filter queries.BookingFilter
		cursor *queries.Cursor
	}{
		{"unknown status", queries.BookingFilter{Status: "lost"}, nil},
		{"unknown time slot", queries.BookingFilter{TimeSlot: "9:30 PM"}, nil},
		{"garbage cursor", queries.BookingFilter{}, &queries.Cursor{After: "not-a-cursor"}},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingReadStore(ctrl)

			_, _, err := queries.NewBookingQueries(store).List(ctx, tc.filter, tc.cursor, 10)
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrValidation), "got %v", err)
		})
	}
}

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2030, 6, 1, 12, 30, 15, 123456000, time.UTC)

	pos, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, "LT2030K7Q2ZD"))
	require.NoError(t, err)
	assert.True(t, at.Equal(pos.CreatedAt))
	assert.Equal(t, "LT2030K7Q2ZD", pos.Code)

	for _, bad := range []string{"", "%%%", "djI6MS1h"} {
		_, err := queries.DecodeAfterCursor(bad)
		assert.Error(t, err, bad)
	}
}
