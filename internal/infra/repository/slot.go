package repository

import (
	"context"

	"github.com/Varma0099/lill-things/internal/domain/slot"
	"github.com/Varma0099/lill-things/internal/infra"
	"github.com/Varma0099/lill-things/internal/infra/repository/converter"
	sqlc "github.com/Varma0099/lill-things/internal/infra/sqlc/generated"
	"github.com/Varma0099/lill-things/internal/pkg/clock"
	"github.com/Varma0099/lill-things/internal/pkg/pgconv"
	"github.com/Varma0099/lill-things/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=slot.go -destination=../../../tests/mock/repository/slot.go -package=repositorymock

type SlotWriteQueries interface {
	GetSlotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Slots, error)
	GetSlotByKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetSlotByKeyParams) (sqlc.Slots, error)
	InsertSlotIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSlotIfAbsentParams) (sqlc.Slots, error)
	ReserveSlotCapacity(ctx context.Context, db sqlc.DBTX, arg sqlc.ReserveSlotCapacityParams) (int32, error)
	ReleaseSlotCapacity(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseSlotCapacityParams) (int32, error)
	UpdateSlotSettings(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSlotSettingsParams) (sqlc.Slots, error)
}

type SlotRepository struct {
	queries SlotWriteQueries
	db      sqlc.DBTX
	clock   clock.Clock
}

func NewSlotRepository(queries SlotWriteQueries, db sqlc.DBTX, clk clock.Clock) *SlotRepository {
	return &SlotRepository{
		queries: queries,
		db:      db,
		clock:   clk,
	}
}

// FindOrCreate relies on the (activity_id, slot_date, time_slot) unique key:
// the insert is a no-op for every caller but the first, and the follow-up
// select sees the winner's row.
func (r *SlotRepository) FindOrCreate(ctx context.Context, key slot.Key, capacity int) (*slot.Slot, error) {
	fresh := slot.New(key, capacity, r.clock.Now())
	row, err := r.queries.InsertSlotIfAbsent(ctx, r.db, converter.SlotToInsertParams(fresh))
	if err == nil {
		return converter.SlotToDomain(row), nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, infra.WrapRepoErr("failed to create slot", err)
	}
	return r.FindByKey(ctx, key)
}

func (r *SlotRepository) FindByKey(ctx context.Context, key slot.Key) (*slot.Slot, error) {
	row, err := r.queries.GetSlotByKey(ctx, r.db, converter.SlotKeyToParams(key))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get slot by key", err)
	}
	return converter.SlotToDomain(row), nil
}

func (r *SlotRepository) FindByID(ctx context.Context, id uuid.UUID) (*slot.Slot, error) {
	row, err := r.queries.GetSlotByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get slot by id", err)
	}
	return converter.SlotToDomain(row), nil
}

func (r *SlotRepository) Reserve(ctx context.Context, slotID uuid.UUID, participants int) (shared.ReserveResult, error) {
	left, err := r.queries.ReserveSlotCapacity(ctx, r.db, sqlc.ReserveSlotCapacityParams{
		Participants: pgconv.IntToInt32(participants),
		ID:           slotID,
	})
	if err == nil {
		return shared.ReserveResult{Accepted: true, SpotsLeft: int(left)}, nil
	}
	if !pgconv.IsNoRows(err) {
		return shared.ReserveResult{}, infra.WrapRepoErr("failed to reserve slot capacity", err)
	}

	// Rejected: report what is left so the caller can explain why.
	current, err := r.FindByID(ctx, slotID)
	if err != nil {
		return shared.ReserveResult{}, err
	}
	remaining := current.SpotsLeft()
	if !current.IsAvailable() {
		remaining = 0
	}
	return shared.ReserveResult{Accepted: false, SpotsLeft: remaining}, nil
}

func (r *SlotRepository) Release(ctx context.Context, slotID uuid.UUID, participants int) (int, error) {
	left, err := r.queries.ReleaseSlotCapacity(ctx, r.db, sqlc.ReleaseSlotCapacityParams{
		Participants: pgconv.IntToInt32(participants),
		ID:           slotID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("slot not found or release exceeds bookings", slot.ErrReleaseExceedsBooked, infra.KindConstraintViolated)
		}
		return 0, infra.WrapRepoErr("failed to release slot capacity", err)
	}
	return int(left), nil
}

func (r *SlotRepository) UpdateSettings(ctx context.Context, slotID uuid.UUID, isAvailable bool, capacity int) (*slot.Slot, error) {
	if capacity < 0 {
		return nil, slot.ErrCapacityBelowBookings
	}
	row, err := r.queries.UpdateSlotSettings(ctx, r.db, sqlc.UpdateSlotSettingsParams{
		IsAvailable: isAvailable,
		MaxCapacity: pgconv.IntToInt32(capacity),
		ID:          slotID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			// Either the slot vanished or the new capacity is below current bookings.
			if _, findErr := r.FindByID(ctx, slotID); findErr != nil {
				return nil, findErr
			}
			return nil, slot.ErrCapacityBelowBookings
		}
		return nil, infra.WrapRepoErr("failed to update slot settings", err)
	}
	return converter.SlotToDomain(row), nil
}
