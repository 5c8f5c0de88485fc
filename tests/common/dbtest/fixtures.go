//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Varma0099/lill-things/internal/domain/activity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestSlot inserts a slot for a seeded activity and returns its id.
func CreateTestSlot(t *testing.T, db DBLike, activityName, date, timeSlot string, capacity, booked int) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	var activityID uuid.UUID
	err := db.QueryRow(ctx, "SELECT id FROM activities WHERE lower(name) = lower($1)", activityName).Scan(&activityID)
	require.NoError(t, err)

	slotID := uuid.New()
	_, err = db.Exec(ctx, `
		INSERT INTO slots (id, activity_id, slot_date, time_slot, max_capacity, current_bookings)
		VALUES ($1, $2, $3::date, $4, $5, $6)`,
		slotID, activityID, date, timeSlot, capacity, booked)
	require.NoError(t, err)

	return slotID
}

func SetActivityActive(t *testing.T, db DBLike, activityName string, active bool) {
	t.Helper()

	tag, err := db.Exec(context.Background(), "UPDATE activities SET is_active = $2 WHERE lower(name) = lower($1)", activityName, active)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
}

func CountBookings(t *testing.T, db DBLike, slotID uuid.UUID) (count int, participants int) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT count(*), coalesce(sum(participants), 0) FROM bookings WHERE slot_id = $1 AND status <> 'cancelled'",
		slotID).Scan(&count, &participants)
	require.NoError(t, err)
	return count, participants
}

func SlotBookings(t *testing.T, db DBLike, slotID uuid.UUID) int {
	t.Helper()

	var current int
	err := db.QueryRow(context.Background(), "SELECT current_bookings FROM slots WHERE id = $1", slotID).Scan(&current)
	require.NoError(t, err)
	return current
}

// inserts the activity catalog needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	for _, a := range activity.DefaultCatalog() {
		_, err := pool.Exec(ctx, `
			INSERT INTO activities (id, name, description, icon, color, duration_minutes, max_capacity, price_cents, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (name) DO NOTHING`,
			a.ID(), a.Name(), a.Description(), a.Icon(), a.Color(),
			a.DurationMinutes(), a.MaxCapacity(), a.PriceCents(), a.IsActive())
		if err != nil {
			return err
		}
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		tables, err := publicTables(ctx, pool)
		switch {
		case err != nil:
			truncateSQL.Store("")
		case len(tables) == 0:
			truncateSQL.Store("SELECT 1")
		default:
			truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
		}
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
