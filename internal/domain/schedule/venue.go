package schedule

import "time"

// Opening hours of Dionysos Gotha.
func DefaultWeeklySchedule() WeeklySchedule {
	evening := []Period{MustPeriod("17:00", "22:30")}
	return WeeklySchedule{
		time.Sunday:    {MustPeriod("11:30", "14:30"), MustPeriod("17:00", "22:00")},
		time.Monday:    nil,
		time.Tuesday:   clonePeriods(evening),
		time.Wednesday: clonePeriods(evening),
		time.Thursday:  clonePeriods(evening),
		time.Friday:    clonePeriods(evening),
		time.Saturday:  clonePeriods(evening),
	}
}

// DefaultHolidayOverride opens a holiday Monday for the evening.
func DefaultHolidayOverride() *HolidayOverride {
	return &HolidayOverride{
		Weekday: time.Monday,
		Periods: []Period{MustPeriod("17:00", "22:00")},
	}
}

func DefaultRuleTable() RuleTable {
	closing := EnsureClosingSlot(MustTime("22:30"))
	return RuleTable{
		time.Sunday:    EnsureSundayEdges(MustTime("14:30"), MustTime("22:00")),
		time.Monday:    {Kind: RuleNone},
		time.Tuesday:   closing,
		time.Wednesday: closing,
		time.Thursday:  closing,
		time.Friday:    closing,
		time.Saturday:  closing,
	}
}

// Public holidays in Gotha, Thuringia.
var defaultHolidays = []string{
	// 2024
	"2024-01-01", // New Year's Day
	"2024-03-29", // Good Friday
	"2024-04-01", // Easter Monday
	"2024-05-01", // Labour Day
	"2024-05-09", // Ascension Day
	"2024-05-20", // Whit Monday
	"2024-10-03", // German Unity Day
	"2024-10-31", // Reformation Day
	"2024-12-25", // Christmas Day
	"2024-12-26", // Boxing Day

	// 2025
	"2025-01-01",
	"2025-04-18",
	"2025-04-21",
	"2025-05-01",
	"2025-05-29",
	"2025-06-09",
	"2025-10-03",
	"2025-10-31",
	"2025-12-25",
	"2025-12-26",
}

func DefaultHolidays() HolidayCalendar {
	dates := make([]Date, 0, len(defaultHolidays))
	for _, s := range defaultHolidays {
		dates = append(dates, MustDate(s))
	}
	return NewHolidayCalendar(dates...)
}

// DefaultCalendar is the venue calendar with the built-in holidays.
func DefaultCalendar() *Calendar {
	cal, err := NewCalendar(DefaultWeeklySchedule(), DefaultHolidays(), DefaultHolidayOverride(), DefaultRuleTable())
	if err != nil {
		panic(err)
	}
	return cal
}
