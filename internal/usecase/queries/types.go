package queries

import (
	"time"

	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/schedule"
	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/slot"
)

// Read models (DTO for read side)
type AvailabilityView struct {
	Date         schedule.Date
	Weekday      time.Weekday
	Holiday      bool
	Today        bool
	Past         bool
	Closed       bool
	Slots        slot.List
	Selected     schedule.TimeOfDay
	Base         schedule.TimeOfDay
	WindowStart  int
	Window       []WindowEntryView
	Quantized    schedule.TimeOfDay
	Snapped      bool
	AutoAdvanced bool
	Recentered   bool
}

type WindowEntryView struct {
	Time     schedule.TimeOfDay
	Inert    bool
	Selected bool
}

type DayScheduleView struct {
	Weekday time.Weekday
	Periods []schedule.Period
	Extra   []schedule.TimeOfDay
	Inert   []schedule.TimeOfDay
}

type ScheduleView struct {
	TimeZone        string
	StepMinutes     int
	Days            []DayScheduleView
	HolidayOverride *DayScheduleView
	Holidays        []schedule.Date
}
