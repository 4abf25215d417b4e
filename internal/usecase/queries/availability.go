package queries

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queries

import (
	"context"
	"log/slog"
	"time"

	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/schedule"
	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/slot"
	"github.com/ngocduc1504/reservierung-dionysos/internal/pkg/clock"
	"github.com/ngocduc1504/reservierung-dionysos/internal/pkg/errs"
)

var (
	ErrInvalidDate   = errs.New("invalid date")
	ErrInvalidTime   = errs.New("invalid time")
	ErrInvalidOrigin = errs.New("invalid origin")
)

// AvailabilityParams is the selection state the client holds between cycles.
// A zero Date means the venue-local today.
type AvailabilityParams struct {
	Date     schedule.Date
	Selected schedule.TimeOfDay
	Base     schedule.TimeOfDay
	Origin   slot.Origin
}

type AvailabilityQueries interface {
	Availability(ctx context.Context, params AvailabilityParams) (*AvailabilityView, error)
	Schedule(ctx context.Context) (*ScheduleView, error)
}

type availabilityQueriesImpl struct {
	engine *slot.Engine
	clock  clock.Clock
}

func NewAvailabilityQueries(engine *slot.Engine, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{engine: engine, clock: clk}
}

func (q *availabilityQueriesImpl) Availability(ctx context.Context, params AvailabilityParams) (*AvailabilityView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := q.clock.Now()
	today := q.engine.Generator().Today(now)
	date := params.Date
	if date.IsZero() {
		date = today
	}
	if date.Before(today) {
		slog.Debug("availability requested for past date", "date", date.String(), "today", today.String())
		return q.pastView(date, params), nil
	}

	ev := q.engine.Evaluate(slot.Input{
		Date:     date,
		Selected: params.Selected,
		Base:     params.Base,
		Origin:   params.Origin,
	}, now)

	slog.Debug("availability evaluated",
		"date", date.String(),
		"origin", params.Origin.String(),
		"slots", len(ev.Slots),
		"selected", ev.Selected.String(),
		"base", ev.Base.String(),
		"recentered", ev.Recentered,
	)

	return q.toView(ev), nil
}

func (q *availabilityQueriesImpl) toView(ev slot.Evaluation) *AvailabilityView {
	weekday := ev.Date.Weekday()
	window := make([]WindowEntryView, len(ev.Window.Slots))
	for i, t := range ev.Window.Slots {
		window[i] = WindowEntryView{
			Time:     t,
			Inert:    q.engine.Inert().IsInert(weekday, t),
			Selected: t == ev.Selected,
		}
	}
	return &AvailabilityView{
		Date:         ev.Date,
		Weekday:      weekday,
		Holiday:      ev.Holiday,
		Today:        ev.Today,
		Closed:       ev.Closed(),
		Slots:        ev.Slots,
		Selected:     ev.Selected,
		Base:         ev.Base,
		WindowStart:  ev.Window.Start,
		Window:       window,
		Quantized:    ev.Quantized,
		Snapped:      ev.Snapped,
		AutoAdvanced: ev.AutoAdvanced,
		Recentered:   ev.Recentered,
	}
}

// pastView reports a date before the venue-local today as closed, the way the submit check rejects it.
func (q *availabilityQueriesImpl) pastView(date schedule.Date, params AvailabilityParams) *AvailabilityView {
	return &AvailabilityView{
		Date:     date,
		Weekday:  date.Weekday(),
		Holiday:  q.engine.Generator().Calendar().IsHoliday(date),
		Past:     true,
		Closed:   true,
		Slots:    slot.List{},
		Selected: params.Selected,
		Base:     params.Base,
		Window:   []WindowEntryView{},
	}
}

func (q *availabilityQueriesImpl) Schedule(ctx context.Context) (*ScheduleView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gen := q.engine.Generator()
	cal := gen.Calendar()
	weekly := cal.Weekly()

	days := make([]DayScheduleView, 0, len(weekly))
	for d := time.Sunday; d <= time.Saturday; d++ {
		days = append(days, DayScheduleView{
			Weekday: d,
			Periods: weekly.For(d),
			Extra:   cal.RuleFor(d).Ensure,
			Inert:   inertTimes(q.engine.Inert(), d, cal.RuleFor(d).Ensure),
		})
	}

	view := &ScheduleView{
		TimeZone:    gen.Location().String(),
		StepMinutes: gen.Step(),
		Days:        days,
		Holidays:    cal.Holidays().Dates(),
	}
	if o, ok := cal.Override(); ok {
		view.HolidayOverride = &DayScheduleView{Weekday: o.Weekday, Periods: o.Periods}
	}
	return view, nil
}

func inertTimes(p slot.InertPolicy, day time.Weekday, candidates []schedule.TimeOfDay) []schedule.TimeOfDay {
	var out []schedule.TimeOfDay
	for _, t := range candidates {
		if p.IsInert(day, t) {
			out = append(out, t)
		}
	}
	return out
}
