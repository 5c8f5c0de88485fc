package repository

import (
	"context"
	"time"

	"github.com/Varma0099/lill-things/internal/domain/booking"
	"github.com/Varma0099/lill-things/internal/infra"
	sqlc "github.com/Varma0099/lill-things/internal/infra/sqlc/generated"
	"github.com/Varma0099/lill-things/internal/pkg/pgconv"
	"github.com/Varma0099/lill-things/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=idempotency.go -destination=../../../tests/mock/repository/idempotency.go -package=repositorymock

type IdempotencyWriteQueries interface {
	ClaimIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimIdempotencyKeyParams) (uuid.UUID, error)
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, key uuid.UUID) (sqlc.IdempotencyKeys, error)
	CompleteIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteIdempotencyKeyParams) (int64, error)
	DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlc.DBTX, expiresAt pgtype.Timestamptz) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      sqlc.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db sqlc.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

// Claim relies on the upsert's WHERE clause: a live key makes it return no
// row, an expired one is overwritten in place.
func (r *IdempotencyRepository) Claim(ctx context.Context, c shared.IdempotencyClaim) (bool, error) {
	_, err := r.queries.ClaimIdempotencyKey(ctx, r.db, sqlc.ClaimIdempotencyKeyParams{
		Key:         c.Key,
		Endpoint:    c.Endpoint,
		RequestHash: c.RequestHash,
		CreatedAt:   pgconv.TimeToPgtype(c.CreatedAt),
		ExpiresAt:   pgconv.TimeToPgtype(c.ExpiresAt),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to claim idempotency key", err)
	}
	return true, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, r.db, key)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	rec := &shared.IdempotencyRecord{
		Key:         row.Key,
		Endpoint:    row.Endpoint,
		RequestHash: row.RequestHash,
		ExpiresAt:   pgconv.TimeFromPgtype(row.ExpiresAt),
	}
	if code := pgconv.StringPtrFromPgtype(row.ConfirmationCode); code != nil {
		rec.Result = booking.ConfirmationCode(*code)
	}
	return rec, nil
}

func (r *IdempotencyRepository) Complete(ctx context.Context, key uuid.UUID, code booking.ConfirmationCode) error {
	n, err := r.queries.CompleteIdempotencyKey(ctx, r.db, sqlc.CompleteIdempotencyKeyParams{
		Key:              key,
		ConfirmationCode: pgconv.StringToPgtype(code.String()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	n, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return n, nil
}
