package converter

import (
	"github.com/Varma0099/lill-things/internal/domain/booking"
	"github.com/Varma0099/lill-things/internal/domain/slot"
	sqlc "github.com/Varma0099/lill-things/internal/infra/sqlc/generated"
	"github.com/Varma0099/lill-things/internal/pkg/pgconv"
)

func BookingToInsertParams(b *booking.Booking) sqlc.InsertBookingParams {
	c := b.Customer()
	return sqlc.InsertBookingParams{
		ConfirmationCode: b.Code().String(),
		SlotID:           b.SlotID(),
		ActivityName:     b.ActivityName(),
		BookingDate:      pgconv.DateToPgtype(b.BookingDate()),
		TimeSlot:         b.TimeSlot().String(),
		CustomerName:     c.Name(),
		CustomerEmail:    c.Email(),
		CustomerPhone:    c.Phone(),
		Participants:     pgconv.IntToInt32(c.Participants()),
		Status:           b.Status().String(),
		CreatedAt:        pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingToDomain(row sqlc.Bookings) *booking.Booking {
	return booking.Reconstruct(booking.ReconstructParams{
		Code:         booking.ConfirmationCode(row.ConfirmationCode),
		SlotID:       row.SlotID,
		ActivityName: row.ActivityName,
		BookingDate:  pgconv.DateFromPgtype(row.BookingDate),
		TimeSlot:     slot.TimeSlot(row.TimeSlot),
		Customer: booking.ReconstructCustomerInfo(
			row.CustomerName,
			row.CustomerEmail,
			row.CustomerPhone,
			int(row.Participants),
		),
		Status: booking.Status(row.Status),
		EmailSent: booking.EmailSent{
			CustomerConfirmation: row.CustomerConfirmationSent,
			OwnerNotification:    row.OwnerNotificationSent,
		},
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}
