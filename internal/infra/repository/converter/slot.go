package converter

import (
	"github.com/Varma0099/lill-things/internal/domain/slot"
	sqlc "github.com/Varma0099/lill-things/internal/infra/sqlc/generated"
	"github.com/Varma0099/lill-things/internal/pkg/pgconv"
)

func SlotToDomain(row sqlc.Slots) *slot.Slot {
	return slot.Reconstruct(slot.ReconstructParams{
		ID:              row.ID,
		ActivityID:      row.ActivityID,
		Date:            pgconv.DateFromPgtype(row.SlotDate),
		TimeSlot:        slot.TimeSlot(row.TimeSlot),
		MaxCapacity:     int(row.MaxCapacity),
		CurrentBookings: int(row.CurrentBookings),
		IsAvailable:     row.IsAvailable,
		PriceOverride:   pgconv.Int64PtrFromPgtype(row.PriceOverrideCents),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
	})
}

func SlotToInsertParams(s *slot.Slot) sqlc.InsertSlotIfAbsentParams {
	return sqlc.InsertSlotIfAbsentParams{
		ID:          s.ID(),
		ActivityID:  s.ActivityID(),
		SlotDate:    pgconv.DateToPgtype(s.Date()),
		TimeSlot:    s.TimeSlot().String(),
		MaxCapacity: pgconv.IntToInt32(s.MaxCapacity()),
		CreatedAt:   pgconv.TimeToPgtype(s.CreatedAt()),
	}
}

func SlotKeyToParams(key slot.Key) sqlc.GetSlotByKeyParams {
	return sqlc.GetSlotByKeyParams{
		ActivityID: key.ActivityID,
		SlotDate:   pgconv.DateToPgtype(key.Date),
		TimeSlot:   key.TimeSlot.String(),
	}
}
