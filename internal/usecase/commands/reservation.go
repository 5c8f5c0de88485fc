package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Varma0099/lill-things/internal/domain/activity"
	"github.com/Varma0099/lill-things/internal/domain/booking"
	"github.com/Varma0099/lill-things/internal/domain/slot"
	"github.com/Varma0099/lill-things/internal/infra"
	"github.com/Varma0099/lill-things/internal/pkg/clock"
	"github.com/Varma0099/lill-things/internal/pkg/errs"
	"github.com/Varma0099/lill-things/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

var tracer = otel.Tracer("github.com/Varma0099/lill-things/internal/usecase/commands")

var (
	ErrMissingRequiredFields = errs.New("missing required fields")
	errIdempotencyNoResult   = errs.New("idempotency key has no stored booking")
)

const (
	DefaultMaxCodeAttempts = 5
	DefaultIdempotencyTTL  = 24 * time.Hour

	idempotencyScope = "create-reservation"
)

type CreateReservationInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Participants  int
	Activity      string
	Date          string
	TimeSlot      string
	// IdempotencyKey is optional. uuid.Nil means the request is not deduplicated.
	IdempotencyKey uuid.UUID
}

type CreateReservationResult struct {
	Booking *booking.Booking
	// IsReplayed is set when the key matched an earlier committed request and
	// Booking is that request's booking.
	IsReplayed bool
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, in CreateReservationInput) (*CreateReservationResult, error)
}

type ReservationSettings struct {
	MaxCodeAttempts int
	IdempotencyTTL  time.Duration
}

type reservationCommandsImpl struct {
	uow             shared.UnitOfWork
	codes           booking.CodeGenerator
	publisher       AvailabilityPublisher
	dispatcher      *NotificationDispatcher
	clock           clock.Clock
	maxCodeAttempts int
	idempotencyTTL  time.Duration
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	codes booking.CodeGenerator,
	publisher AvailabilityPublisher,
	dispatcher *NotificationDispatcher,
	clk clock.Clock,
	settings ReservationSettings,
) ReservationCommands {
	attempts := settings.MaxCodeAttempts
	if attempts < 1 {
		attempts = DefaultMaxCodeAttempts
	}
	ttl := settings.IdempotencyTTL
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	return &reservationCommandsImpl{
		uow:             uow,
		codes:           codes,
		publisher:       publisher,
		dispatcher:      dispatcher,
		clock:           clk,
		maxCodeAttempts: attempts,
		idempotencyTTL:  ttl,
	}
}

type reservationRequest struct {
	activity       string
	date           time.Time
	timeSlot       slot.TimeSlot
	customer       booking.CustomerInfo
	idempotencyKey uuid.UUID
}

func (in CreateReservationInput) parse() (*reservationRequest, error) {
	for _, v := range []string{in.CustomerName, in.CustomerEmail, in.CustomerPhone, in.Activity, in.Date, in.TimeSlot} {
		if strings.TrimSpace(v) == "" {
			return nil, errs.Mark(ErrMissingRequiredFields, errs.ErrValidation)
		}
	}

	customer, err := booking.NewCustomerInfo(in.CustomerName, in.CustomerEmail, in.CustomerPhone, in.Participants)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	date, err := slot.ParseDate(in.Date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	ts, err := slot.ParseTimeSlot(in.TimeSlot)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	return &reservationRequest{
		activity:       activity.NormalizeName(in.Activity),
		date:           date,
		timeSlot:       ts,
		customer:       customer,
		idempotencyKey: in.IdempotencyKey,
	}, nil
}

// hash fingerprints the request after normalization, so a retry that only
// differs in case or spacing still matches.
func (r *reservationRequest) hash() string {
	data, _ := json.Marshal(struct {
		Activity     string `json:"activity"`
		Date         string `json:"date"`
		TimeSlot     string `json:"time_slot"`
		Name         string `json:"name"`
		Email        string `json:"email"`
		Phone        string `json:"phone"`
		Participants int    `json:"participants"`
	}{
		Activity:     activity.ChannelKey(r.activity),
		Date:         slot.FormatDate(r.date),
		TimeSlot:     r.timeSlot.String(),
		Name:         r.customer.Name(),
		Email:        strings.ToLower(r.customer.Email()),
		Phone:        r.customer.Phone(),
		Participants: r.customer.Participants(),
	})
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func (r *reservationRequest) claim(now time.Time, ttl time.Duration) *shared.IdempotencyClaim {
	if r.idempotencyKey == uuid.Nil {
		return nil
	}
	return &shared.IdempotencyClaim{
		Key:         r.idempotencyKey,
		Endpoint:    idempotencyScope,
		RequestHash: r.hash(),
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	}
}

// CreateReservation validates the request, then in one transaction resolves
// the activity, finds or creates the slot, takes capacity and stores the
// booking. Broadcast and emails happen only after commit and never fail the call.
//
// With an idempotency key the key is claimed in that same transaction, so it
// is stored exactly when the booking is. A retry with the same key and body
// gets the stored booking back and takes no capacity.
func (r *reservationCommandsImpl) CreateReservation(ctx context.Context, in CreateReservationInput) (*CreateReservationResult, error) {
	ctx, span := tracer.Start(ctx, "ReservationCommands.CreateReservation")
	defer span.End()

	req, err := in.parse()
	if err != nil {
		span.SetStatus(codes.Error, "validation")
		return nil, err
	}
	span.SetAttributes(
		attribute.String("booking.activity", req.activity),
		attribute.String("booking.date", slot.FormatDate(req.date)),
		attribute.String("booking.time_slot", req.timeSlot.String()),
		attribute.Int("booking.participants", req.customer.Participants()),
	)

	claim := req.claim(r.clock.Now(), r.idempotencyTTL)

	var (
		created   *booking.Booking
		spotsLeft int
		replayed  bool
	)
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, spotsLeft, replayed = nil, 0, false

		if claim != nil {
			prior, err := replayOrClaim(ctx, tx, *claim)
			if err != nil {
				return err
			}
			if prior != nil {
				created, replayed = prior, true
				return nil
			}
		}

		act, err := resolveActivity(ctx, tx, req.activity)
		if err != nil {
			return err
		}

		key := slot.Key{ActivityID: act.ID(), Date: req.date, TimeSlot: req.timeSlot}
		s, err := tx.Slots().FindOrCreate(ctx, key, act.MaxCapacity())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		res, err := tx.Slots().Reserve(ctx, s.ID(), req.customer.Participants())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !res.Accepted {
			return errs.Mark(slotFullError(res.SpotsLeft), errs.ErrSlotFull)
		}

		b, err := r.insertBooking(ctx, tx, s, act.Name(), req.customer)
		if err != nil {
			return err
		}

		if claim != nil {
			if err := tx.IdempotencyKeys().Complete(ctx, claim.Key, b.Code()); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		created, spotsLeft = b, res.SpotsLeft
		return nil
	})
	if err != nil {
		err = classifyReservationError(ctx, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "reservation rejected")
		return nil, err
	}

	span.SetAttributes(
		attribute.String("booking.code", created.Code().String()),
		attribute.Bool("booking.replayed", replayed),
	)
	if replayed {
		slog.InfoContext(ctx, "booking replayed for idempotency key",
			"code", created.Code().String(),
			"idempotency_key", claim.Key.String())
		return &CreateReservationResult{Booking: created, IsReplayed: true}, nil
	}

	slog.InfoContext(ctx, "booking created",
		"code", created.Code().String(),
		"activity", created.ActivityName(),
		"date", slot.FormatDate(created.BookingDate()),
		"time_slot", created.TimeSlot().String(),
		"participants", created.Customer().Participants(),
		"spots_left", spotsLeft)

	publishSpotsLeft(ctx, r.publisher, created.ActivityName(), created.BookingDate(), created.TimeSlot(), spotsLeft)
	r.dispatcher.Dispatch(created)

	return &CreateReservationResult{Booking: created}, nil
}

// replayOrClaim returns the booking stored under c.Key, or nil after taking
// the key for this request.
func replayOrClaim(ctx context.Context, tx shared.Tx, c shared.IdempotencyClaim) (*booking.Booking, error) {
	claimed, err := tx.IdempotencyKeys().Claim(ctx, c)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if claimed {
		return nil, nil
	}

	rec, err := tx.IdempotencyKeys().Get(ctx, c.Key)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if rec.Endpoint != c.Endpoint || rec.RequestHash != c.RequestHash {
		return nil, errs.ErrIdempotencyKeyReused
	}
	if !rec.Completed() {
		return nil, errs.Mark(errIdempotencyNoResult, errs.ErrInternal)
	}

	b, err := tx.Bookings().FindByCodeForUpdate(ctx, rec.Result)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return b, nil
}

func resolveActivity(ctx context.Context, tx shared.Tx, name string) (*activity.Activity, error) {
	act, err := tx.Activities().FindByName(ctx, name)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(fmt.Errorf("activity %q not found", name), errs.ErrActivityNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !act.Bookable() {
		return nil, errs.Mark(fmt.Errorf("activity %q is not open for booking", name), errs.ErrActivityNotFound)
	}
	return act, nil
}

// insertBooking stores a booking under a fresh code, regenerating on collision.
func (r *reservationCommandsImpl) insertBooking(
	ctx context.Context,
	tx shared.Tx,
	s *slot.Slot,
	activityName string,
	customer booking.CustomerInfo,
) (*booking.Booking, error) {
	for attempt := 1; attempt <= r.maxCodeAttempts; attempt++ {
		code, err := r.codes.Generate()
		if err != nil {
			return nil, errs.Mark(err, errs.ErrInternal)
		}

		b := booking.New(code, s, activityName, customer, r.clock.Now())
		err = tx.Bookings().Create(ctx, b)
		switch {
		case err == nil:
			return b, nil
		case infra.IsKind(err, infra.KindDuplicateKey):
			slog.WarnContext(ctx, "confirmation code collision, regenerating",
				"attempt", attempt,
				"code", code.String())
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	slog.ErrorContext(ctx, "confirmation code generation exhausted", "attempts", r.maxCodeAttempts)
	return nil, errs.Mark(
		errs.Wrap(errs.ErrConfirmationCollision, fmt.Sprintf("no unique code after %d attempts", r.maxCodeAttempts)),
		errs.ErrInternal,
	)
}

func slotFullError(spotsLeft int) error {
	if spotsLeft <= 0 {
		return errors.New("slot is full")
	}
	return fmt.Errorf("not enough spots left: only %d available", spotsLeft)
}

// classifyReservationError keeps client-facing kinds as they are and folds
// everything else into storage-unavailable or internal.
func classifyReservationError(ctx context.Context, err error) error {
	switch {
	case errs.Is(err, errs.ErrValidation),
		errs.Is(err, errs.ErrActivityNotFound),
		errs.Is(err, errs.ErrSlotFull),
		errs.Is(err, errs.ErrIdempotencyKeyReused):
		return err
	case errs.Is(err, errs.ErrStorageUnavailable),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		slog.WarnContext(ctx, "reservation aborted: storage unavailable", "error", err.Error())
		return errs.Mark(err, errs.ErrStorageUnavailable)
	default:
		slog.ErrorContext(ctx, "reservation failed", "error", err.Error())
		return errs.Mark(err, errs.ErrInternal)
	}
}

func publishSpotsLeft(ctx context.Context, pub AvailabilityPublisher, activityName string, date time.Time, ts slot.TimeSlot, spotsLeft int) {
	ev := slot.UpdatedEvent{
		Activity:  activityName,
		Date:      slot.FormatDate(date),
		TimeSlot:  ts.String(),
		SpotsLeft: spotsLeft,
	}
	if err := pub.Publish(context.WithoutCancel(ctx), activityName, ev); err != nil {
		slog.WarnContext(ctx, "slot update broadcast failed",
			"activity", activityName,
			"date", ev.Date,
			"time_slot", ev.TimeSlot,
			"error", err.Error())
	}
}
