package booking

import (
	"time"

	"github.com/Varma0099/lill-things/internal/domain/slot"

	"github.com/google/uuid"
)

// NotificationKind names one of the two emails sent per booking.
type NotificationKind string

const (
	NotificationCustomerConfirmation NotificationKind = "customer_confirmation"
	NotificationOwner                NotificationKind = "owner_notification"
)

// EmailSent records which notifications were delivered.
type EmailSent struct {
	CustomerConfirmation bool
	OwnerNotification    bool
}

func (e EmailSent) Has(kind NotificationKind) bool {
	switch kind {
	case NotificationCustomerConfirmation:
		return e.CustomerConfirmation
	case NotificationOwner:
		return e.OwnerNotification
	default:
		return false
	}
}

func (e *EmailSent) mark(kind NotificationKind) {
	switch kind {
	case NotificationCustomerConfirmation:
		e.CustomerConfirmation = true
	case NotificationOwner:
		e.OwnerNotification = true
	}
}

// Booking is an accepted reservation against one slot. The activity name,
// date and time slot are copied from the slot so a booking reads on its own.
type Booking struct {
	code         ConfirmationCode
	slotID       uuid.UUID
	activityName string
	bookingDate  time.Time
	timeSlot     slot.TimeSlot
	customer     CustomerInfo
	status       Status
	emailSent    EmailSent
	createdAt    time.Time
	updatedAt    time.Time
}

// New creates a confirmed booking for s.
func New(code ConfirmationCode, s *slot.Slot, activityName string, customer CustomerInfo, now time.Time) *Booking {
	return &Booking{
		code:         code,
		slotID:       s.ID(),
		activityName: activityName,
		bookingDate:  s.Date(),
		timeSlot:     s.TimeSlot(),
		customer:     customer,
		status:       StatusConfirmed,
		createdAt:    now,
		updatedAt:    now,
	}
}

type ReconstructParams struct {
	Code         ConfirmationCode
	SlotID       uuid.UUID
	ActivityName string
	BookingDate  time.Time
	TimeSlot     slot.TimeSlot
	Customer     CustomerInfo
	Status       Status
	EmailSent    EmailSent
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func Reconstruct(p ReconstructParams) *Booking {
	return &Booking{
		code:         p.Code,
		slotID:       p.SlotID,
		activityName: p.ActivityName,
		bookingDate:  slot.TruncateDate(p.BookingDate),
		timeSlot:     p.TimeSlot,
		customer:     p.Customer,
		status:       p.Status,
		emailSent:    p.EmailSent,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}
}

func (b *Booking) Code() ConfirmationCode  { return b.code }
func (b *Booking) SlotID() uuid.UUID       { return b.slotID }
func (b *Booking) ActivityName() string    { return b.activityName }
func (b *Booking) BookingDate() time.Time  { return b.bookingDate }
func (b *Booking) TimeSlot() slot.TimeSlot { return b.timeSlot }
func (b *Booking) Customer() CustomerInfo  { return b.customer }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) EmailSent() EmailSent    { return b.emailSent }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }

// TransitionTo moves the booking to next. It reports whether the booking
// stopped holding capacity, in which case the caller must release the spots.
func (b *Booking) TransitionTo(next Status, now time.Time) (releasesCapacity bool, err error) {
	if !next.IsValid() {
		return false, ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(next) {
		return false, ErrInvalidTransition
	}
	releasesCapacity = b.status.HoldsCapacity() && !next.HoldsCapacity()
	b.status = next
	b.updatedAt = now
	return releasesCapacity, nil
}

func (b *Booking) MarkNotificationSent(kind NotificationKind, now time.Time) {
	b.emailSent.mark(kind)
	b.updatedAt = now
}

// PendingNotifications lists the emails not yet delivered for an upcoming booking.
func (b *Booking) PendingNotifications() []NotificationKind {
	if b.status != StatusConfirmed && b.status != StatusPending {
		return nil
	}
	var out []NotificationKind
	for _, kind := range []NotificationKind{NotificationCustomerConfirmation, NotificationOwner} {
		if !b.emailSent.Has(kind) {
			out = append(out, kind)
		}
	}
	return out
}
