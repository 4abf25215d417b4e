package slot

import (
	"time"

	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/schedule"
)

const (
	DefaultStepMinutes = 15
	DefaultLeadTime    = 30 * time.Minute
)

type Generator struct {
	calendar *schedule.Calendar
	loc      *time.Location
	step     int
	leadTime int
}

type Option func(*Generator)

// WithLocation sets the venue time zone used to read "now".
func WithLocation(loc *time.Location) Option {
	return func(g *Generator) {
		if loc != nil {
			g.loc = loc
		}
	}
}

// WithLeadTime sets the same-day minimum buffer. Sub-minute precision is dropped.
func WithLeadTime(d time.Duration) Option {
	return func(g *Generator) {
		if d >= 0 {
			g.leadTime = int(d / time.Minute)
		}
	}
}

func WithStep(minutes int) Option {
	return func(g *Generator) {
		if minutes > 0 {
			g.step = minutes
		}
	}
}

func NewGenerator(calendar *schedule.Calendar, opts ...Option) *Generator {
	g := &Generator{
		calendar: calendar,
		loc:      time.Local,
		step:     DefaultStepMinutes,
		leadTime: int(DefaultLeadTime / time.Minute),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) Calendar() *schedule.Calendar { return g.calendar }
func (g *Generator) Location() *time.Location     { return g.loc }
func (g *Generator) Step() int                    { return g.step }

// Today is the venue-local date of now.
func (g *Generator) Today(now time.Time) schedule.Date {
	return schedule.DateOf(now.In(g.loc))
}

// ClockTime is the venue-local time of day of now.
func (g *Generator) ClockTime(now time.Time) schedule.TimeOfDay {
	local := now.In(g.loc)
	t, _ := schedule.NewTimeOfDay(local.Hour(), local.Minute())
	return t
}

// Generate returns every bookable slot of date. Closing times are bookable.
// On the current venue-local date only slots strictly after now+lead time survive.
func (g *Generator) Generate(date schedule.Date, now time.Time) List {
	periods := g.calendar.ResolvePeriods(date)
	if len(periods) == 0 {
		return List{}
	}

	var times []schedule.TimeOfDay
	for _, p := range periods {
		for m := p.Open().Minutes(); m <= p.Close().Minutes(); m += g.step {
			t, err := schedule.FromMinutes(m)
			if err != nil {
				break
			}
			times = append(times, t)
		}
	}

	// edge insertion runs before the lead-time filter so inserted slots are filtered too
	times = g.calendar.RuleFor(date.Weekday()).Apply(times)
	slots := normalize(times)

	if g.Today(now) != date {
		return slots
	}
	cutoff := g.ClockTime(now).Minutes() + g.leadTime
	out := make(List, 0, len(slots))
	for _, s := range slots {
		if s.Minutes() > cutoff {
			out = append(out, s)
		}
	}
	return out
}
