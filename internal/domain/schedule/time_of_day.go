package schedule

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour
)

var (
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvalidPeriod     = errors.New("invalid period")
	ErrOverlappingPeriod = errors.New("periods overlap or are out of order")
)

// TimeOfDay is an hour:minute value on a 24-hour clock.
// The zero value is "unset" and renders as an empty string.
type TimeOfDay struct {
	minutes int
	valid   bool
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d out of range", ErrInvalidTimeFormat, hour, minute)
	}
	return TimeOfDay{minutes: hour*MinutesPerHour + minute, valid: true}, nil
}

// FromMinutes builds a TimeOfDay from a minute-of-day offset.
func FromMinutes(m int) (TimeOfDay, error) {
	if m < 0 || m >= MinutesPerDay {
		return TimeOfDay{}, fmt.Errorf("%w: minute of day %d out of range", ErrInvalidTimeFormat, m)
	}
	return TimeOfDay{minutes: m, valid: true}, nil
}

// ParseTimeOfDay accepts exactly "HH:MM". Anything else is rejected, nothing is repaired.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	hour, herr := parseDigits(s[:2])
	minute, merr := parseDigits(s[3:])
	if herr != nil || merr != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return NewTimeOfDay(hour, minute)
}

// ParseOptionalTimeOfDay treats the empty string as unset.
func ParseOptionalTimeOfDay(s string) (TimeOfDay, error) {
	if s == "" {
		return TimeOfDay{}, nil
	}
	return ParseTimeOfDay(s)
}

// MustTime panics on malformed input. Only for static tables.
func MustTime(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func parseDigits(s string) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrInvalidTimeFormat
		}
	}
	return strconv.Atoi(s)
}

func (t TimeOfDay) IsZero() bool { return !t.valid }
func (t TimeOfDay) Hour() int    { return t.minutes / MinutesPerHour }
func (t TimeOfDay) Minute() int  { return t.minutes % MinutesPerHour }

// Minutes returns the minute-of-day (hour*60+minute).
func (t TimeOfDay) Minutes() int { return t.minutes }

// IsHalfHour reports whether the minute component is 0 or 30.
func (t TimeOfDay) IsHalfHour() bool {
	return t.valid && (t.Minute() == 0 || t.Minute() == 30)
}

func (t TimeOfDay) Before(o TimeOfDay) bool { return t.minutes < o.minutes }

// Distance is the absolute difference in minutes.
func (t TimeOfDay) Distance(o TimeOfDay) int {
	d := t.minutes - o.minutes
	if d < 0 {
		return -d
	}
	return d
}

// FloorTo rounds down to a multiple of step minutes.
func (t TimeOfDay) FloorTo(step int) TimeOfDay {
	if !t.valid || step <= 0 {
		return t
	}
	return TimeOfDay{minutes: t.minutes - t.minutes%step, valid: true}
}

func (t TimeOfDay) String() string {
	if !t.valid {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(b []byte) error {
	parsed, err := ParseOptionalTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
