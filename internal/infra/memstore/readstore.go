package memstore

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/Varma0099/lill-things/internal/domain/activity"
	"github.com/Varma0099/lill-things/internal/domain/booking"
	"github.com/Varma0099/lill-things/internal/domain/slot"
	"github.com/Varma0099/lill-things/internal/infra"
	"github.com/Varma0099/lill-things/internal/usecase/queries"

	"github.com/google/uuid"
)

// ReadStore serves the query side from the same in-memory state.
type ReadStore struct {
	store *Store
}

func NewReadStore(s *Store) *ReadStore {
	return &ReadStore{store: s}
}

func (r *ReadStore) ListActive(ctx context.Context) ([]*queries.ActivityView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var views []*queries.ActivityView
	for _, p := range r.store.state.activities {
		if p.IsActive {
			views = append(views, queries.NewActivityView(activity.Reconstruct(p)))
		}
	}
	slices.SortFunc(views, func(a, b *queries.ActivityView) int {
		return strings.Compare(a.Name, b.Name)
	})
	return views, nil
}

func (r *ReadStore) FindByName(ctx context.Context, name string) (*queries.ActivityView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := findActivityByName(r.store.state, name)
	if !ok {
		return nil, infra.WrapRepoErr("activity not found", nil, infra.KindNotFound)
	}
	return queries.NewActivityView(activity.Reconstruct(p)), nil
}

func (r *ReadStore) ListByActivityAndDate(ctx context.Context, activityID uuid.UUID, date time.Time) ([]*slot.Slot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	day := slot.FormatDate(date)
	var out []*slot.Slot
	for _, p := range r.store.state.slots {
		if p.ActivityID == activityID && slot.FormatDate(p.Date) == day {
			out = append(out, slot.Reconstruct(p))
		}
	}
	return out, nil
}

func (r *ReadStore) FindByCode(ctx context.Context, code booking.ConfirmationCode) (*queries.BookingView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.state.bookings[code]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return queries.NewBookingView(booking.Reconstruct(p)), nil
}

func (r *ReadStore) List(ctx context.Context, filter queries.BookingFilter, after *queries.CursorPosition, limit int32) ([]*queries.BookingView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var views []*queries.BookingView
	for _, p := range sortedBookings(r.store.state.bookings, true) {
		if !matches(p, filter) {
			continue
		}
		if after != nil && !before(p, after) {
			continue
		}
		views = append(views, queries.NewBookingView(booking.Reconstruct(p)))
		if int32(len(views)) == limit { // #nosec G115 -- len is bounded by limit
			break
		}
	}
	return views, nil
}

func matches(p booking.ReconstructParams, f queries.BookingFilter) bool {
	if f.Activity != "" && !activity.SameName(p.ActivityName, f.Activity) {
		return false
	}
	if f.Date != nil && slot.FormatDate(p.BookingDate) != slot.FormatDate(*f.Date) {
		return false
	}
	if f.TimeSlot != "" && string(p.TimeSlot) != f.TimeSlot {
		return false
	}
	if f.Status != "" && string(p.Status) != f.Status {
		return false
	}
	return true
}

// before reports whether p sorts after the cursor in newest-first order.
func before(p booking.ReconstructParams, c *queries.CursorPosition) bool {
	created := p.CreatedAt.Truncate(time.Microsecond)
	at := c.CreatedAt.Truncate(time.Microsecond)
	if created.Equal(at) {
		return string(p.Code) < c.Code
	}
	return created.Before(at)
}

// sortedBookings orders by (created_at, code), newest first when desc is set.
func sortedBookings(m map[booking.ConfirmationCode]booking.ReconstructParams, desc bool) []booking.ReconstructParams {
	out := make([]booking.ReconstructParams, 0, len(m))
	for _, p := range m {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b booking.ReconstructParams) int {
		c := a.CreatedAt.Compare(b.CreatedAt)
		if c == 0 {
			c = strings.Compare(string(a.Code), string(b.Code))
		}
		if desc {
			return -c
		}
		return c
	})
	return out
}
