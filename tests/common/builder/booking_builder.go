//go:build unit || e2e

package builder

import (
	"time"

	"github.com/Varma0099/lill-things/internal/domain/activity"
	"github.com/Varma0099/lill-things/internal/domain/booking"
	"github.com/Varma0099/lill-things/internal/domain/slot"
	reqdto "github.com/Varma0099/lill-things/internal/handler/dto/request"
	"github.com/Varma0099/lill-things/internal/usecase/commands"
	"github.com/Varma0099/lill-things/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	Name         string
	Email        string
	Phone        string
	Participants int
	Activity     string
	Date         string
	Time         string
	Code         string
	SlotID       uuid.UUID
	Status       booking.Status
	CreatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Name:         "Asha Rao",
		Email:        "asha@example.com",
		Phone:        "+91 98450 12345",
		Participants: 2,
		Activity:     activity.PotteryMaking,
		Date:         "2030-06-15",
		Time:         string(slot.Slot2PM),
		Code:         "LT2030AB12CD",
		SlotID:       uuid.New(),
		Status:       booking.StatusConfirmed,
		CreatedAt:    time.Date(2030, 6, 1, 9, 30, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CustomerInfo: reqdto.CustomerInfoRequest{
			Name:         b.Name,
			Email:        b.Email,
			Phone:        b.Phone,
			Participants: b.Participants,
		},
		Activity: b.Activity,
		Date:     b.Date,
		Time:     b.Time,
	}
}

func (b *BookingBuilder) BuildInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		CustomerName:  b.Name,
		CustomerEmail: b.Email,
		CustomerPhone: b.Phone,
		Participants:  b.Participants,
		Activity:      b.Activity,
		Date:          b.Date,
		TimeSlot:      b.Time,
	}
}

// BuildDomain skips validation so tests can build any state.
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	date, _ := slot.ParseDate(b.Date)
	return booking.Reconstruct(booking.ReconstructParams{
		Code:         booking.ConfirmationCode(b.Code),
		SlotID:       b.SlotID,
		ActivityName: b.Activity,
		BookingDate:  date,
		TimeSlot:     slot.TimeSlot(b.Time),
		Customer:     booking.ReconstructCustomerInfo(b.Name, b.Email, b.Phone, b.Participants),
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.CreatedAt,
	})
}

func (b *BookingBuilder) BuildResult() *commands.CreateReservationResult {
	return &commands.CreateReservationResult{Booking: b.BuildDomain()}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return queries.NewBookingView(b.BuildDomain())
}
