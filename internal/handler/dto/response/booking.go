package response

import (
	"time"

	"github.com/Varma0099/lill-things/internal/domain/booking"
	"github.com/Varma0099/lill-things/internal/domain/slot"
	"github.com/Varma0099/lill-things/internal/usecase/queries"
)

type CustomerInfoResponse struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Participants int    `json:"participants"`
}

type EmailSentResponse struct {
	CustomerConfirmation bool `json:"customerConfirmation"`
	OwnerNotification    bool `json:"ownerNotification"`
}

type BookingResponse struct {
	ConfirmationCode string               `json:"confirmationCode"`
	SlotID           string               `json:"slotId"`
	ActivityName     string               `json:"activityName"`
	BookingDate      string               `json:"bookingDate"`
	TimeSlot         string               `json:"timeSlot"`
	CustomerInfo     CustomerInfoResponse `json:"customerInfo"`
	Status           string               `json:"status"`
	EmailSent        EmailSentResponse    `json:"emailSent"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ConfirmationCode: v.ConfirmationCode,
		SlotID:           v.SlotID.String(),
		ActivityName:     v.ActivityName,
		BookingDate:      slot.FormatDate(v.BookingDate),
		TimeSlot:         v.TimeSlot,
		CustomerInfo: CustomerInfoResponse{
			Name:         v.CustomerName,
			Email:        v.CustomerEmail,
			Phone:        v.CustomerPhone,
			Participants: v.Participants,
		},
		Status: v.Status,
		EmailSent: EmailSentResponse{
			CustomerConfirmation: v.CustomerConfirmationSent,
			OwnerNotification:    v.OwnerNotificationSent,
		},
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return FromBookingView(queries.NewBookingView(b))
}

// CreateBookingResponse carries either the booking or a message, never both.
type CreateBookingResponse struct {
	Success bool             `json:"success"`
	Booking *BookingResponse `json:"booking,omitempty"`
	Message string           `json:"message,omitempty"`
}

type BookingListResponse struct {
	Bookings   []*BookingResponse `json:"bookings"`
	NextCursor string             `json:"nextCursor,omitempty"`
}

func FromBookingList(views []*queries.BookingView, next *queries.Cursor) *BookingListResponse {
	res := &BookingListResponse{Bookings: make([]*BookingResponse, len(views))}
	for i, v := range views {
		res.Bookings[i] = FromBookingView(v)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}
