package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Varma0099/lill-things/internal/domain/activity"
	"github.com/Varma0099/lill-things/internal/domain/booking"
	"github.com/Varma0099/lill-things/internal/domain/slot"
	"github.com/Varma0099/lill-things/internal/infra"
	"github.com/Varma0099/lill-things/internal/pkg/clock"
	"github.com/Varma0099/lill-things/internal/pkg/errs"
	"github.com/Varma0099/lill-things/internal/usecase/shared"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/commands/admin.go -package=commandsmock

type UpdateSlotSettingsInput struct {
	Activity    string
	Date        string
	TimeSlot    string
	IsAvailable *bool
	MaxCapacity *int
}

type AdminCommands interface {
	UpdateBookingStatus(ctx context.Context, code string, status string) (*booking.Booking, error)
	UpdateSlotSettings(ctx context.Context, in UpdateSlotSettingsInput) (*slot.Slot, error)
}

type adminCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher AvailabilityPublisher
	clock     clock.Clock
}

func NewAdminCommands(uow shared.UnitOfWork, publisher AvailabilityPublisher, clk clock.Clock) AdminCommands {
	return &adminCommandsImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
	}
}

// UpdateBookingStatus applies a status change. Cancelling gives the booking's
// spots back to its slot in the same transaction.
func (a *adminCommandsImpl) UpdateBookingStatus(ctx context.Context, rawCode string, rawStatus string) (*booking.Booking, error) {
	ctx, span := tracer.Start(ctx, "AdminCommands.UpdateBookingStatus",
		trace.WithAttributes(attribute.String("booking.status", rawStatus)))
	defer span.End()

	code, err := booking.ParseConfirmationCode(rawCode)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	next := booking.Status(strings.TrimSpace(rawStatus))
	if !next.IsValid() {
		return nil, errs.Mark(booking.ErrInvalidStatus, errs.ErrValidation)
	}

	var (
		updated   *booking.Booking
		released  bool
		spotsLeft int
	)
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		updated, released, spotsLeft = nil, false, 0

		b, err := tx.Bookings().FindByCodeForUpdate(ctx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrBookingNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		release, err := b.TransitionTo(next, a.clock.Now())
		if err != nil {
			return errs.Mark(
				fmt.Errorf("cannot move booking from %s to %s: %w", b.Status(), next, err),
				errs.ErrInvalidStatusTransition,
			)
		}
		if err := tx.Bookings().UpdateStatus(ctx, b); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if release {
			left, err := tx.Slots().Release(ctx, b.SlotID(), b.Customer().Participants())
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			released, spotsLeft = true, left
		}

		updated = b
		return nil
	})
	if err != nil {
		return nil, classifyAdminError(ctx, err)
	}

	slog.InfoContext(ctx, "booking status updated",
		"code", updated.Code().String(),
		"status", updated.Status().String(),
		"released", released)

	if released {
		publishSpotsLeft(ctx, a.publisher, updated.ActivityName(), updated.BookingDate(), updated.TimeSlot(), spotsLeft)
	}
	return updated, nil
}

// UpdateSlotSettings opens, closes or resizes a slot, creating it first if no
// booking has touched it yet.
func (a *adminCommandsImpl) UpdateSlotSettings(ctx context.Context, in UpdateSlotSettingsInput) (*slot.Slot, error) {
	ctx, span := tracer.Start(ctx, "AdminCommands.UpdateSlotSettings",
		trace.WithAttributes(
			attribute.String("slot.activity", in.Activity),
			attribute.String("slot.date", in.Date),
			attribute.String("slot.time_slot", in.TimeSlot),
		))
	defer span.End()

	name := activity.NormalizeName(in.Activity)
	if name == "" || strings.TrimSpace(in.Date) == "" || strings.TrimSpace(in.TimeSlot) == "" {
		return nil, errs.Mark(ErrMissingRequiredFields, errs.ErrValidation)
	}
	if in.IsAvailable == nil && in.MaxCapacity == nil {
		return nil, errs.Mark(errors.New("nothing to update: set isAvailable or maxCapacity"), errs.ErrValidation)
	}
	if in.MaxCapacity != nil && *in.MaxCapacity < 0 {
		return nil, errs.Mark(errors.New("maxCapacity cannot be negative"), errs.ErrValidation)
	}
	date, err := slot.ParseDate(in.Date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	ts, err := slot.ParseTimeSlot(in.TimeSlot)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	var (
		updated      *slot.Slot
		activityName string
	)
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		act, err := tx.Activities().FindByName(ctx, name)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(fmt.Errorf("activity %q not found", name), errs.ErrActivityNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		s, err := tx.Slots().FindOrCreate(ctx, slot.Key{ActivityID: act.ID(), Date: date, TimeSlot: ts}, act.MaxCapacity())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		isAvailable, capacity := s.IsAvailable(), s.MaxCapacity()
		if in.IsAvailable != nil {
			isAvailable = *in.IsAvailable
		}
		if in.MaxCapacity != nil {
			capacity = *in.MaxCapacity
		}

		updated, err = tx.Slots().UpdateSettings(ctx, s.ID(), isAvailable, capacity)
		if err != nil {
			if errors.Is(err, slot.ErrCapacityBelowBookings) {
				return errs.Mark(
					fmt.Errorf("capacity %d is below the %d spots already booked", capacity, s.CurrentBookings()),
					errs.ErrCapacityBelowBookings,
				)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		activityName = act.Name()
		return nil
	})
	if err != nil {
		return nil, classifyAdminError(ctx, err)
	}

	spotsLeft := updated.SpotsLeft()
	if !updated.IsAvailable() {
		spotsLeft = 0
	}
	slog.InfoContext(ctx, "slot settings updated",
		"activity", activityName,
		"date", slot.FormatDate(updated.Date()),
		"time_slot", updated.TimeSlot().String(),
		"is_available", updated.IsAvailable(),
		"max_capacity", updated.MaxCapacity())

	publishSpotsLeft(ctx, a.publisher, activityName, updated.Date(), updated.TimeSlot(), spotsLeft)
	return updated, nil
}

func classifyAdminError(ctx context.Context, err error) error {
	switch {
	case errs.Is(err, errs.ErrValidation),
		errs.Is(err, errs.ErrActivityNotFound),
		errs.Is(err, errs.ErrBookingNotFound),
		errs.Is(err, errs.ErrInvalidStatusTransition),
		errs.Is(err, errs.ErrCapacityBelowBookings):
		return err
	default:
		slog.ErrorContext(ctx, "admin command failed", "error", err.Error())
		return errs.Mark(err, errs.ErrInternal)
	}
}
