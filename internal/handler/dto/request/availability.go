package request

import (
	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/schedule"
	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/slot"
	"github.com/ngocduc1504/reservierung-dionysos/internal/pkg/errs"
	"github.com/ngocduc1504/reservierung-dionysos/internal/usecase/queries"
)

type AvailabilityQuery struct {
	Date     string `form:"date"`
	Selected string `form:"selected"`
	Base     string `form:"base"`
	Origin   string `form:"origin" binding:"omitempty,oneof=initial window_tap external_selector"`
}

func (q *AvailabilityQuery) ToParams() (queries.AvailabilityParams, error) {
	var params queries.AvailabilityParams
	if q.Date != "" {
		d, err := schedule.ParseDate(q.Date)
		if err != nil {
			return params, invalid(err, queries.ErrInvalidDate)
		}
		params.Date = d
	}

	selected, err := schedule.ParseOptionalTimeOfDay(q.Selected)
	if err != nil {
		return params, invalid(err, queries.ErrInvalidTime)
	}
	base, err := schedule.ParseOptionalTimeOfDay(q.Base)
	if err != nil {
		return params, invalid(err, queries.ErrInvalidTime)
	}
	origin, err := slot.ParseOrigin(q.Origin)
	if err != nil {
		return params, invalid(err, queries.ErrInvalidOrigin)
	}

	params.Selected = selected
	params.Base = base
	params.Origin = origin
	return params, nil
}

func invalid(err, kind error) error {
	return errs.Mark(errs.Mark(err, kind), errs.ErrInvalidInput)
}
