package schedule

import "sort"

// HolidayCalendar is a set of venue-local dates.
type HolidayCalendar struct {
	dates map[Date]struct{}
}

func NewHolidayCalendar(dates ...Date) HolidayCalendar {
	hc := HolidayCalendar{dates: make(map[Date]struct{}, len(dates))}
	for _, d := range dates {
		hc.dates[d] = struct{}{}
	}
	return hc
}

// ParseHolidayCalendar builds a calendar from YYYY-MM-DD strings.
func ParseHolidayCalendar(values []string) (HolidayCalendar, error) {
	dates := make([]Date, 0, len(values))
	for _, v := range values {
		d, err := ParseDate(v)
		if err != nil {
			return HolidayCalendar{}, err
		}
		dates = append(dates, d)
	}
	return NewHolidayCalendar(dates...), nil
}

func (hc HolidayCalendar) Contains(d Date) bool {
	_, ok := hc.dates[d]
	return ok
}

func (hc HolidayCalendar) Len() int { return len(hc.dates) }

// Merge returns a new calendar holding the dates of both.
func (hc HolidayCalendar) Merge(other HolidayCalendar) HolidayCalendar {
	merged := NewHolidayCalendar(hc.Dates()...)
	for d := range other.dates {
		merged.dates[d] = struct{}{}
	}
	return merged
}

// Dates returns the holidays in ascending order.
func (hc HolidayCalendar) Dates() []Date {
	out := make([]Date, 0, len(hc.dates))
	for d := range hc.dates {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
