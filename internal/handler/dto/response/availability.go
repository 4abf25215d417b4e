package response

import (
	"github.com/ngocduc1504/reservierung-dionysos/internal/usecase/queries"
)

type WindowEntryResponse struct {
	Time     string `json:"time"`
	Inert    bool   `json:"inert"`
	Selected bool   `json:"selected"`
}

type AvailabilityResponse struct {
	Date         string                `json:"date"`
	Weekday      string                `json:"weekday"`
	IsHoliday    bool                  `json:"isHoliday"`
	IsToday      bool                  `json:"isToday"`
	Past         bool                  `json:"past"`
	Closed       bool                  `json:"closed"`
	Slots        []string              `json:"slots"`
	SelectedTime string                `json:"selectedTime"`
	BaseTime     string                `json:"baseTime"`
	WindowStart  int                   `json:"windowStart"`
	Window       []WindowEntryResponse `json:"window"`
	Quantized    string                `json:"quantized"`
	Snapped      bool                  `json:"snapped"`
	AutoAdvanced bool                  `json:"autoAdvanced"`
	Recentered   bool                  `json:"recentered"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	window := make([]WindowEntryResponse, len(v.Window))
	for i, e := range v.Window {
		window[i] = WindowEntryResponse{Time: e.Time.String(), Inert: e.Inert, Selected: e.Selected}
	}
	return &AvailabilityResponse{
		Date:         v.Date.String(),
		Weekday:      v.Weekday.String(),
		IsHoliday:    v.Holiday,
		IsToday:      v.Today,
		Past:         v.Past,
		Closed:       v.Closed,
		Slots:        v.Slots.Strings(),
		SelectedTime: v.Selected.String(),
		BaseTime:     v.Base.String(),
		WindowStart:  v.WindowStart,
		Window:       window,
		Quantized:    v.Quantized.String(),
		Snapped:      v.Snapped,
		AutoAdvanced: v.AutoAdvanced,
		Recentered:   v.Recentered,
	}
}

type PeriodResponse struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

type DayScheduleResponse struct {
	Weekday string           `json:"weekday"`
	Closed  bool             `json:"closed"`
	Periods []PeriodResponse `json:"periods"`
	Extra   []string         `json:"extra,omitempty"`
	Inert   []string         `json:"inert,omitempty"`
}

type ScheduleResponse struct {
	TimeZone        string                `json:"timeZone"`
	StepMinutes     int                   `json:"stepMinutes"`
	Days            []DayScheduleResponse `json:"days"`
	HolidayOverride *DayScheduleResponse  `json:"holidayOverride,omitempty"`
	Holidays        []string              `json:"holidays"`
}

func FromScheduleView(v *queries.ScheduleView) *ScheduleResponse {
	days := make([]DayScheduleResponse, len(v.Days))
	for i := range v.Days {
		days[i] = fromDayView(&v.Days[i])
	}
	holidays := make([]string, len(v.Holidays))
	for i, d := range v.Holidays {
		holidays[i] = d.String()
	}
	res := &ScheduleResponse{
		TimeZone:    v.TimeZone,
		StepMinutes: v.StepMinutes,
		Days:        days,
		Holidays:    holidays,
	}
	if v.HolidayOverride != nil {
		o := fromDayView(v.HolidayOverride)
		res.HolidayOverride = &o
	}
	return res
}

func fromDayView(d *queries.DayScheduleView) DayScheduleResponse {
	periods := make([]PeriodResponse, len(d.Periods))
	for i, p := range d.Periods {
		periods[i] = PeriodResponse{Open: p.Open().String(), Close: p.Close().String()}
	}
	return DayScheduleResponse{
		Weekday: d.Weekday.String(),
		Closed:  len(d.Periods) == 0,
		Periods: periods,
		Extra:   timeStrings(d.Extra),
		Inert:   timeStrings(d.Inert),
	}
}
