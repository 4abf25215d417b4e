//go:build unit || e2e

package builder

import (
	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/reservation"
	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/schedule"
	reqdto "github.com/ngocduc1504/reservierung-dionysos/internal/handler/dto/request"
	"github.com/ngocduc1504/reservierung-dionysos/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	Date      string
	Time      string
	Guests    int
	FirstName string
	LastName  string
	PhoneCode string
	Phone     string
	Email     string
	Message   string
}

// NewReservationBuilder defaults to a Saturday evening far enough in the future to be bookable.
func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		Date:      "2030-01-05",
		Time:      "19:00",
		Guests:    4,
		FirstName: "Eleni",
		LastName:  "Papadopoulou",
		PhoneCode: "+49",
		Phone:     "176 1234567",
		Email:     "eleni@example.com",
		Message:   "Window table if possible",
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) BuildSpec() reservation.Spec {
	return reservation.Spec{
		Date:      parseDate(r.Date),
		Time:      parseTime(r.Time),
		Guests:    r.Guests,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		PhoneCode: r.PhoneCode,
		Phone:     r.Phone,
		Email:     r.Email,
		Message:   r.Message,
	}
}

func (r *ReservationBuilder) BuildDomain(services *reservation.Services) (*reservation.Request, error) {
	return reservation.NewRequest(services, r.BuildSpec())
}

func (r *ReservationBuilder) BuildCheckRequestDTO() reqdto.CheckReservationRequest {
	return reqdto.CheckReservationRequest{
		Date:      r.Date,
		Time:      r.Time,
		Guests:    r.Guests,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		PhoneCode: r.PhoneCode,
		Phone:     r.Phone,
		Email:     r.Email,
		Message:   r.Message,
	}
}

func (r *ReservationBuilder) BuildCheckCommand() commands.CheckReservationRequest {
	return commands.CheckReservationRequest{
		Date:      parseDate(r.Date),
		Time:      parseTime(r.Time),
		Guests:    r.Guests,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		PhoneCode: r.PhoneCode,
		Phone:     r.Phone,
		Email:     r.Email,
		Message:   r.Message,
	}
}

func (r *ReservationBuilder) BuildCheckResult() *commands.CheckReservationResult {
	return &commands.CheckReservationResult{
		ID:     uuid.New(),
		Date:   parseDate(r.Date),
		Time:   parseTime(r.Time),
		Guests: r.Guests,
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithDate(date string) *ReservationBuilder {
	r.Date = date
	return r
}

func (r *ReservationBuilder) WithTime(t string) *ReservationBuilder {
	r.Time = t
	return r
}

func (r *ReservationBuilder) WithGuests(guests int) *ReservationBuilder {
	r.Guests = guests
	return r
}

func (r *ReservationBuilder) WithPhone(code, number string) *ReservationBuilder {
	r.PhoneCode = code
	r.Phone = number
	return r
}

func (r *ReservationBuilder) WithEmail(email string) *ReservationBuilder {
	r.Email = email
	return r
}

func (r *ReservationBuilder) WithMessage(message string) *ReservationBuilder {
	r.Message = message
	return r
}

// unparsable values become the zero value so domain validation can reject them
func parseDate(s string) schedule.Date {
	d, err := schedule.ParseDate(s)
	if err != nil {
		return schedule.Date{}
	}
	return d
}

func parseTime(s string) schedule.TimeOfDay {
	t, err := schedule.ParseTimeOfDay(s)
	if err != nil {
		return schedule.TimeOfDay{}
	}
	return t
}
