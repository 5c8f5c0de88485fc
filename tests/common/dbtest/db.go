//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx, so fixtures run the same
// on the pool or inside a test's transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SlotKey is the natural key a booking request lands on.
type SlotKey struct {
	Activity string
	Date     string
	TimeSlot string
}

const slotKeyFilter = `
	FROM slots s
	JOIN activities a ON a.id = s.activity_id
	WHERE lower(a.name) = lower($1) AND s.slot_date = $2::date AND s.time_slot = $3`

// CountSlots returns how many slot rows exist for key. Anything above one
// means two racing bookings each created the slot.
func CountSlots(t *testing.T, db DBLike, key SlotKey) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*)"+slotKeyFilter,
		key.Activity, key.Date, key.TimeSlot).Scan(&n)
	require.NoError(t, err)
	return n
}

// SlotByKey loads the single slot row for key.
func SlotByKey(t *testing.T, db DBLike, key SlotKey) (id uuid.UUID, capacity, current int) {
	t.Helper()

	err := db.QueryRow(context.Background(), "SELECT s.id, s.max_capacity, s.current_bookings"+slotKeyFilter,
		key.Activity, key.Date, key.TimeSlot).Scan(&id, &capacity, &current)
	require.NoError(t, err)
	return id, capacity, current
}

func publicTables(ctx context.Context, db DBLike) ([]string, error) {
	rows, err := db.Query(ctx, `
		SELECT 'public.' || quote_ident(tablename)
		FROM pg_tables
		WHERE schemaname = 'public'
		  AND tablename NOT IN ('schema_migrations')`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}
