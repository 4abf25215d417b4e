package schedule

import (
	"fmt"
	"time"
)

// HolidayOverride replaces the periods of one weekday when the date is a holiday.
type HolidayOverride struct {
	Weekday time.Weekday
	Periods []Period
}

// Calendar resolves opening periods for a date: weekly schedule, holiday set and holiday override.
type Calendar struct {
	weekly   WeeklySchedule
	holidays HolidayCalendar
	override *HolidayOverride
	rules    RuleTable
}

func NewCalendar(weekly WeeklySchedule, holidays HolidayCalendar, override *HolidayOverride, rules RuleTable) (*Calendar, error) {
	if override != nil && (override.Weekday < time.Sunday || override.Weekday > time.Saturday) {
		return nil, fmt.Errorf("%w: override weekday %d", ErrInvalidPeriod, override.Weekday)
	}
	return &Calendar{
		weekly:   weekly,
		holidays: holidays,
		override: override,
		rules:    rules,
	}, nil
}

// PeriodsFor returns the regular periods of a weekday, ignoring holidays.
func (c *Calendar) PeriodsFor(day time.Weekday) []Period {
	return c.weekly.For(day)
}

func (c *Calendar) IsHoliday(d Date) bool {
	return c.holidays.Contains(d)
}

// HolidayOverridePeriods returns the override periods when day is the overridden weekday.
func (c *Calendar) HolidayOverridePeriods(day time.Weekday) ([]Period, bool) {
	if c.override == nil || c.override.Weekday != day {
		return nil, false
	}
	return clonePeriods(c.override.Periods), true
}

// ResolvePeriods applies the holiday override once for the date and returns its periods.
func (c *Calendar) ResolvePeriods(d Date) []Period {
	day := d.Weekday()
	if c.IsHoliday(d) {
		if periods, ok := c.HolidayOverridePeriods(day); ok {
			return periods
		}
	}
	return c.PeriodsFor(day)
}

func (c *Calendar) RuleFor(day time.Weekday) PostProcessRule {
	return c.rules.For(day)
}

func (c *Calendar) Weekly() WeeklySchedule    { return c.weekly }
func (c *Calendar) Holidays() HolidayCalendar { return c.holidays }

func (c *Calendar) Override() (HolidayOverride, bool) {
	if c.override == nil {
		return HolidayOverride{}, false
	}
	return HolidayOverride{Weekday: c.override.Weekday, Periods: clonePeriods(c.override.Periods)}, true
}

// WithHolidays returns a copy of the calendar using a different holiday set.
func (c *Calendar) WithHolidays(holidays HolidayCalendar) *Calendar {
	cp := *c
	cp.holidays = holidays
	return &cp
}
