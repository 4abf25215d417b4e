package schedule

import (
	"fmt"
	"time"
)

// Period is one contiguous open-to-close interval within a day. Close is a bookable slot.
type Period struct {
	open  TimeOfDay
	close TimeOfDay
}

func NewPeriod(opens, closes TimeOfDay) (Period, error) {
	if opens.IsZero() || closes.IsZero() {
		return Period{}, fmt.Errorf("%w: open and close are required", ErrInvalidPeriod)
	}
	if closes.Before(opens) {
		return Period{}, fmt.Errorf("%w: %s-%s closes before it opens", ErrInvalidPeriod, opens, closes)
	}
	return Period{open: opens, close: closes}, nil
}

// ParsePeriod parses an "HH:MM" pair.
func ParsePeriod(opens, closes string) (Period, error) {
	o, err := ParseTimeOfDay(opens)
	if err != nil {
		return Period{}, err
	}
	c, err := ParseTimeOfDay(closes)
	if err != nil {
		return Period{}, err
	}
	return NewPeriod(o, c)
}

func MustPeriod(opens, closes string) Period {
	p, err := ParsePeriod(opens, closes)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Period) Open() TimeOfDay  { return p.open }
func (p Period) Close() TimeOfDay { return p.close }

func (p Period) String() string {
	return p.open.String() + "-" + p.close.String()
}

// WeeklySchedule maps a weekday (0=Sunday..6=Saturday) to its ordered periods.
// An empty entry means closed.
type WeeklySchedule [7][]Period

// Validate checks that every day's periods are chronological and non-overlapping.
func (w WeeklySchedule) Validate() error {
	for day, periods := range w {
		for i := 1; i < len(periods); i++ {
			if !periods[i-1].close.Before(periods[i].open) {
				return fmt.Errorf("%w: %s %s and %s",
					ErrOverlappingPeriod, time.Weekday(day), periods[i-1], periods[i])
			}
		}
	}
	return nil
}

func (w WeeklySchedule) For(day time.Weekday) []Period {
	if day < time.Sunday || day > time.Saturday {
		return nil
	}
	return clonePeriods(w[day])
}

func clonePeriods(p []Period) []Period {
	if len(p) == 0 {
		return nil
	}
	out := make([]Period, len(p))
	copy(out, p)
	return out
}
