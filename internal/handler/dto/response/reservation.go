package response

import (
	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/schedule"
	"github.com/ngocduc1504/reservierung-dionysos/internal/usecase/commands"
)

type CheckReservationResponse struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Guests int    `json:"guests"`
}

func FromCheckReservationResult(r *commands.CheckReservationResult) *CheckReservationResponse {
	return &CheckReservationResponse{
		ID:     r.ID.String(),
		Date:   r.Date.String(),
		Time:   r.Time.String(),
		Guests: r.Guests,
	}
}

func timeStrings(ts []schedule.TimeOfDay) []string {
	if len(ts) == 0 {
		return nil
	}
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.String()
	}
	return out
}
