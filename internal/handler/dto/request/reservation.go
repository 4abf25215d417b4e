package request

import (
	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/schedule"
	"github.com/ngocduc1504/reservierung-dionysos/internal/usecase/commands"
	"github.com/ngocduc1504/reservierung-dionysos/internal/usecase/queries"
)

type CheckReservationRequest struct {
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Guests    int    `json:"guests" binding:"required,min=1"`
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	PhoneCode string `json:"phoneCode" binding:"omitempty,startswith=+,max=5"`
	Phone     string `json:"phone" binding:"required,max=30"`
	Email     string `json:"email" binding:"required,email"`
	Message   string `json:"message" binding:"max=1000"`
}

func (r *CheckReservationRequest) ToCommand() (commands.CheckReservationRequest, error) {
	date, err := schedule.ParseDate(r.Date)
	if err != nil {
		return commands.CheckReservationRequest{}, invalid(err, queries.ErrInvalidDate)
	}
	t, err := schedule.ParseTimeOfDay(r.Time)
	if err != nil {
		return commands.CheckReservationRequest{}, invalid(err, queries.ErrInvalidTime)
	}
	return commands.CheckReservationRequest{
		Date:      date,
		Time:      t,
		Guests:    r.Guests,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		PhoneCode: r.PhoneCode,
		Phone:     r.Phone,
		Email:     r.Email,
		Message:   r.Message,
	}, nil
}
