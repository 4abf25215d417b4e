package reservation

import (
	"errors"
	"time"

	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/schedule"
	"github.com/ngocduc1504/reservierung-dionysos/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrDateInPast      = errors.New("date is in the past")
	ErrVenueClosed     = errors.New("venue closed on date")
	ErrSlotUnavailable = errors.New("time is not an offered slot")
	ErrSlotInert       = errors.New("time cannot be selected")
)

type Services struct {
	Clock     clock.Clock
	Slots     SlotChecker
	MaxGuests int
}

// Request is a booking request that passed every submit check. It is never stored.
type Request struct {
	id        uuid.UUID
	date      schedule.Date
	time      schedule.TimeOfDay
	guests    GuestCount
	contact   Contact
	note      Note
	checkedAt time.Time
}

func NewRequest(services *Services, spec Spec) (*Request, error) {
	guests, err := NewGuestCount(spec.Guests, services.MaxGuests)
	if err != nil {
		return nil, err
	}
	contact, err := newContact(spec)
	if err != nil {
		return nil, err
	}
	note, err := NewNote(spec.Message)
	if err != nil {
		return nil, err
	}
	if spec.Date.IsZero() || spec.Time.IsZero() {
		return nil, ErrSlotUnavailable
	}

	now := services.Clock.Now()
	if err := services.Slots.CheckSlot(spec.Date, spec.Time, now); err != nil {
		return nil, err
	}

	return &Request{
		id:        uuid.New(),
		date:      spec.Date,
		time:      spec.Time,
		guests:    guests,
		contact:   contact,
		note:      note,
		checkedAt: now,
	}, nil
}

func newContact(spec Spec) (Contact, error) {
	first, err := NewName(spec.FirstName)
	if err != nil {
		return Contact{}, err
	}
	last, err := NewName(spec.LastName)
	if err != nil {
		return Contact{}, err
	}
	phone, err := NewPhone(spec.PhoneCode, spec.Phone)
	if err != nil {
		return Contact{}, err
	}
	email, err := NewEmail(spec.Email)
	if err != nil {
		return Contact{}, err
	}
	return Contact{FirstName: first, LastName: last, Phone: phone, Email: email}, nil
}

func (r *Request) ID() uuid.UUID            { return r.id }
func (r *Request) Date() schedule.Date      { return r.date }
func (r *Request) Time() schedule.TimeOfDay { return r.time }
func (r *Request) Guests() GuestCount       { return r.guests }
func (r *Request) Contact() Contact         { return r.contact }
func (r *Request) Note() Note               { return r.note }
func (r *Request) CheckedAt() time.Time     { return r.checkedAt }

// StartsAt is the reserved wall-clock instant in loc.
func (r *Request) StartsAt(loc *time.Location) time.Time {
	return time.Date(r.date.Year, r.date.Month, r.date.Day, r.time.Hour(), r.time.Minute(), 0, 0, loc)
}
