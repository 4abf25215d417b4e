//go:build unit || e2e

package builder

import (
	"time"

	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/schedule"
	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/slot"
	"github.com/ngocduc1504/reservierung-dionysos/internal/usecase/queries"
)

type AvailabilityBuilder struct {
	Date     string
	Slots    []string
	Selected string
	Base     string
	Inert    []string
}

// NewAvailabilityBuilder describes a Saturday with a window around 19:00.
func NewAvailabilityBuilder() *AvailabilityBuilder {
	return &AvailabilityBuilder{
		Date:     "2030-01-05",
		Slots:    []string{"18:00", "18:15", "18:30", "18:45", "19:00", "19:15", "19:30", "19:45", "20:00"},
		Selected: "19:00",
		Base:     "19:00",
	}
}

func (a *AvailabilityBuilder) With(mutate func(*AvailabilityBuilder)) *AvailabilityBuilder {
	mutate(a)
	return a
}

func (a *AvailabilityBuilder) BuildView() *queries.AvailabilityView {
	date := schedule.MustDate(a.Date)
	slots := make(slot.List, len(a.Slots))
	for i, s := range a.Slots {
		slots[i] = schedule.MustTime(s)
	}
	inert := make(map[string]bool, len(a.Inert))
	for _, s := range a.Inert {
		inert[s] = true
	}

	selected := parseTime(a.Selected)
	window := make([]queries.WindowEntryView, len(slots))
	for i, t := range slots {
		window[i] = queries.WindowEntryView{Time: t, Inert: inert[t.String()], Selected: t == selected}
	}
	return &queries.AvailabilityView{
		Date:      date,
		Weekday:   date.Weekday(),
		Closed:    len(slots) == 0,
		Slots:     slots,
		Selected:  selected,
		Base:      parseTime(a.Base),
		Window:    window,
		Quantized: slot.Quantize(selected, slots),
	}
}

func (a *AvailabilityBuilder) BuildScheduleView() *queries.ScheduleView {
	cal := schedule.DefaultCalendar()
	days := make([]queries.DayScheduleView, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		days = append(days, queries.DayScheduleView{Weekday: d, Periods: cal.Weekly().For(d), Extra: cal.RuleFor(d).Ensure})
	}
	return &queries.ScheduleView{
		TimeZone:    "Europe/Berlin",
		StepMinutes: slot.DefaultStepMinutes,
		Days:        days,
		Holidays:    cal.Holidays().Dates(),
	}
}
