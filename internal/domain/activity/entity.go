package activity

import (
	"time"

	"github.com/Varma0099/lill-things/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errs.New("activity name is required")
	ErrInvalidCapacity = errs.New("activity capacity must be positive")
	ErrInvalidDuration = errs.New("activity duration must be positive")
	ErrNegativePrice   = errs.New("activity price cannot be negative")
)

type Activity struct {
	id              uuid.UUID
	name            string
	description     string
	icon            string
	color           string
	durationMinutes int
	maxCapacity     int
	priceCents      int64
	isActive        bool
	createdAt       time.Time
}

type Params struct {
	ID              uuid.UUID
	Name            string
	Description     string
	Icon            string
	Color           string
	DurationMinutes int
	MaxCapacity     int
	PriceCents      int64
	IsActive        bool
	CreatedAt       time.Time
}

// New validates p and fills the catalog defaults for zero duration and capacity.
func New(p Params) (*Activity, error) {
	name := NormalizeName(p.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if p.DurationMinutes == 0 {
		p.DurationMinutes = DefaultDurationMinutes
	}
	if p.MaxCapacity == 0 {
		p.MaxCapacity = DefaultMaxCapacity
	}
	if p.DurationMinutes < 0 {
		return nil, ErrInvalidDuration
	}
	if p.MaxCapacity < 0 {
		return nil, ErrInvalidCapacity
	}
	if p.PriceCents < 0 {
		return nil, ErrNegativePrice
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	return &Activity{
		id:              p.ID,
		name:            name,
		description:     p.Description,
		icon:            p.Icon,
		color:           p.Color,
		durationMinutes: p.DurationMinutes,
		maxCapacity:     p.MaxCapacity,
		priceCents:      p.PriceCents,
		isActive:        p.IsActive,
		createdAt:       p.CreatedAt,
	}, nil
}

// Reconstruct rebuilds an activity from storage without validation.
func Reconstruct(p Params) *Activity {
	return &Activity{
		id:              p.ID,
		name:            p.Name,
		description:     p.Description,
		icon:            p.Icon,
		color:           p.Color,
		durationMinutes: p.DurationMinutes,
		maxCapacity:     p.MaxCapacity,
		priceCents:      p.PriceCents,
		isActive:        p.IsActive,
		createdAt:       p.CreatedAt,
	}
}

func (a *Activity) ID() uuid.UUID         { return a.id }
func (a *Activity) Name() string          { return a.name }
func (a *Activity) Description() string   { return a.description }
func (a *Activity) Icon() string          { return a.icon }
func (a *Activity) Color() string         { return a.color }
func (a *Activity) DurationMinutes() int  { return a.durationMinutes }
func (a *Activity) MaxCapacity() int      { return a.maxCapacity }
func (a *Activity) PriceCents() int64     { return a.priceCents }
func (a *Activity) IsActive() bool        { return a.isActive }
func (a *Activity) CreatedAt() time.Time  { return a.createdAt }
func (a *Activity) Bookable() bool        { return a.isActive }
func (a *Activity) Matches(n string) bool { return SameName(a.name, n) }
