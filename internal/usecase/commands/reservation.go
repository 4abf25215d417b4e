package commands

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/reservation"
	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/schedule"
	"github.com/ngocduc1504/reservierung-dionysos/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrDateInPast        = errs.New("date is in the past")
	ErrSlotUnavailable   = errs.New("time slot not available")
	ErrSlotInert         = errs.New("time slot cannot be selected")
	ErrInvalidGuestCount = errs.New("invalid guest count")
	ErrInvalidContact    = errs.New("invalid contact details")
)

type CheckReservationRequest struct {
	Date      schedule.Date
	Time      schedule.TimeOfDay
	Guests    int
	FirstName string
	LastName  string
	PhoneCode string
	Phone     string
	Email     string
	Message   string
}

type CheckReservationResult struct {
	ID     uuid.UUID
	Date   schedule.Date
	Time   schedule.TimeOfDay
	Guests int
}

type ReservationCommands interface {
	Check(ctx context.Context, req CheckReservationRequest) (*CheckReservationResult, error)
}

type reservationCommandsImpl struct {
	services *reservation.Services
}

func NewReservationCommands(services *reservation.Services) ReservationCommands {
	return &reservationCommandsImpl{services: services}
}

func (r *reservationCommandsImpl) Check(ctx context.Context, req CheckReservationRequest) (*CheckReservationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := reservation.NewRequest(r.services, reservation.Spec{
		Date:      req.Date,
		Time:      req.Time,
		Guests:    req.Guests,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		PhoneCode: req.PhoneCode,
		Phone:     req.Phone,
		Email:     req.Email,
		Message:   req.Message,
	})
	if err != nil {
		slog.Debug("reservation check rejected", "date", req.Date.String(), "time", req.Time.String(), "error", err.Error())
		return nil, markDomainError(err)
	}

	slog.Info("reservation check accepted",
		"id", res.ID(),
		"date", res.Date().String(),
		"time", res.Time().String(),
		"guests", res.Guests().Int(),
	)
	return &CheckReservationResult{
		ID:     res.ID(),
		Date:   res.Date(),
		Time:   res.Time(),
		Guests: res.Guests().Int(),
	}, nil
}

func markDomainError(err error) error {
	switch {
	case errors.Is(err, reservation.ErrDateInPast):
		return errs.Mark(errs.Mark(err, ErrDateInPast), errs.ErrNotBookable)
	case errors.Is(err, reservation.ErrSlotInert):
		return errs.Mark(errs.Mark(err, ErrSlotInert), errs.ErrNotBookable)
	case errors.Is(err, reservation.ErrSlotUnavailable), errors.Is(err, reservation.ErrVenueClosed):
		return errs.Mark(errs.Mark(err, ErrSlotUnavailable), errs.ErrNotBookable)
	case errors.Is(err, reservation.ErrInvalidGuestCount):
		return errs.Mark(errs.Mark(err, ErrInvalidGuestCount), errs.ErrInvalidInput)
	case errors.Is(err, reservation.ErrInvalidName),
		errors.Is(err, reservation.ErrInvalidPhone),
		errors.Is(err, reservation.ErrInvalidEmail),
		errors.Is(err, reservation.ErrNoteTooLong):
		return errs.Mark(errs.Mark(err, ErrInvalidContact), errs.ErrInvalidInput)
	default:
		return errs.Wrap(err, "check reservation")
	}
}
