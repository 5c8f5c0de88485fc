package request

import (
	"strings"

	"github.com/Varma0099/lill-things/internal/domain/slot"
	"github.com/Varma0099/lill-things/internal/usecase/commands"
	"github.com/Varma0099/lill-things/internal/usecase/queries"
)

type CustomerInfoRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Participants int    `json:"participants"`
}

// CreateBookingRequest leaves field checks to the reservation command so the
// client gets the same message whichever field is wrong.
type CreateBookingRequest struct {
	CustomerInfo CustomerInfoRequest `json:"customerInfo"`
	Activity     string              `json:"activity"`
	Date         string              `json:"date"`
	Time         string              `json:"time"`
}

func (r *CreateBookingRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		CustomerName:  r.CustomerInfo.Name,
		CustomerEmail: r.CustomerInfo.Email,
		CustomerPhone: r.CustomerInfo.Phone,
		Participants:  r.CustomerInfo.Participants,
		Activity:      r.Activity,
		Date:          r.Date,
		TimeSlot:      r.Time,
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListBookingsQuery struct {
	Activity string `form:"activity"`
	Date     string `form:"date"`
	Time     string `form:"time"`
	Status   string `form:"status"`
	Cursor   string `form:"cursor"`
	Limit    int    `form:"limit"`
}

func (q *ListBookingsQuery) ToFilter() (queries.BookingFilter, error) {
	filter := queries.BookingFilter{
		Activity: strings.TrimSpace(q.Activity),
		TimeSlot: strings.TrimSpace(q.Time),
		Status:   strings.TrimSpace(q.Status),
	}
	if d := strings.TrimSpace(q.Date); d != "" {
		date, err := slot.ParseDate(d)
		if err != nil {
			return queries.BookingFilter{}, err
		}
		filter.Date = &date
	}
	return filter, nil
}

func (q *ListBookingsQuery) ToCursor() *queries.Cursor {
	if q.Cursor == "" {
		return nil
	}
	return &queries.Cursor{After: q.Cursor}
}
