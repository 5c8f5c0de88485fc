package queries

import (
	"time"

	"github.com/Varma0099/lill-things/internal/domain/activity"
	"github.com/Varma0099/lill-things/internal/domain/booking"
	"github.com/Varma0099/lill-things/internal/domain/slot"

	"github.com/google/uuid"
)

// ActivityView represents read-optimized catalog data
type ActivityView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Icon            string    `json:"icon"`
	Color           string    `json:"color"`
	DurationMinutes int       `json:"duration_minutes"`
	MaxCapacity     int       `json:"max_capacity"`
	PriceCents      int64     `json:"price_cents"`
	IsActive        bool      `json:"is_active"`
}

func NewActivityView(a *activity.Activity) *ActivityView {
	return &ActivityView{
		ID:              a.ID(),
		Name:            a.Name(),
		Description:     a.Description(),
		Icon:            a.Icon(),
		Color:           a.Color(),
		DurationMinutes: a.DurationMinutes(),
		MaxCapacity:     a.MaxCapacity(),
		PriceCents:      a.PriceCents(),
		IsActive:        a.IsActive(),
	}
}

// AvailabilityView is a full day's schedule for one activity.
type AvailabilityView struct {
	Date     string              `json:"date"`
	Activity string              `json:"activity"`
	Slots    []slot.Availability `json:"slots"`
}

// BookingView represents read-optimized booking data
type BookingView struct {
	ConfirmationCode         string    `json:"confirmation_code"`
	SlotID                   uuid.UUID `json:"slot_id"`
	ActivityName             string    `json:"activity_name"`
	BookingDate              time.Time `json:"booking_date"`
	TimeSlot                 string    `json:"time_slot"`
	CustomerName             string    `json:"customer_name"`
	CustomerEmail            string    `json:"customer_email"`
	CustomerPhone            string    `json:"customer_phone"`
	Participants             int       `json:"participants"`
	Status                   string    `json:"status"`
	CustomerConfirmationSent bool      `json:"customer_confirmation_sent"`
	OwnerNotificationSent    bool      `json:"owner_notification_sent"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

func NewBookingView(b *booking.Booking) *BookingView {
	c := b.Customer()
	sent := b.EmailSent()
	return &BookingView{
		ConfirmationCode:         b.Code().String(),
		SlotID:                   b.SlotID(),
		ActivityName:             b.ActivityName(),
		BookingDate:              b.BookingDate(),
		TimeSlot:                 b.TimeSlot().String(),
		CustomerName:             c.Name(),
		CustomerEmail:            c.Email(),
		CustomerPhone:            c.Phone(),
		Participants:             c.Participants(),
		Status:                   b.Status().String(),
		CustomerConfirmationSent: sent.CustomerConfirmation,
		OwnerNotificationSent:    sent.OwnerNotification,
		CreatedAt:                b.CreatedAt(),
		UpdatedAt:                b.UpdatedAt(),
	}
}

// BookingFilter narrows the staff booking list. Zero values mean "any".
type BookingFilter struct {
	Activity string
	Date     *time.Time
	TimeSlot string
	Status   string
}
