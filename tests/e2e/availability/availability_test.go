//go:build e2e

package availability_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/ngocduc1504/reservierung-dionysos/internal/handler/dto/response"
	"github.com/ngocduc1504/reservierung-dionysos/tests/common/httptest"
	"github.com/ngocduc1504/reservierung-dionysos/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
)

const availabilityURL = "/api/availability"

type AvailabilitySuite struct {
	e2e.SharedSuite
}

func TestAvailabilitySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AvailabilitySuite))
}

func (s *AvailabilitySuite) get(query string) response.AvailabilityResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, availabilityURL+query, nil)
	var body response.AvailabilityResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
	return body
}

func windowTimes(body response.AvailabilityResponse) []string {
	out := make([]string, len(body.Window))
	for i, e := range body.Window {
		out[i] = e.Time
	}
	return out
}

// =============================================================================
// TestSelectionFlow - one booking session across several evaluation cycles
// =============================================================================

func (s *AvailabilitySuite) TestSelectionFlow() {
	s.Run("initial load on today snaps into the list", func() {
		s.Clock.Set(time.Date(2030, 1, 3, 18, 7, 0, 0, time.UTC))

		body := s.get("")
		s.Equal("2030-01-03", body.Date)
		s.True(body.IsToday)
		s.Equal("18:45", body.Slots[0])
		s.Equal("18:45", body.SelectedTime)
		s.Equal("18:45", body.BaseTime)
		s.True(body.Snapped)
	})

	s.Run("tap keeps the window, selector recenters it", func() {
		first := s.get("?date=2030-01-05&selected=19:00&origin=initial")
		s.Equal([]string{"18:00", "18:15", "18:30", "18:45", "19:00", "19:15", "19:30", "19:45", "20:00"}, windowTimes(first))

		tapped := s.get("?date=2030-01-05&selected=20:00&base=" + first.BaseTime + "&origin=window_tap")
		s.Equal("20:00", tapped.SelectedTime)
		s.Equal("19:00", tapped.BaseTime)
		if diff := cmp.Diff(windowTimes(first), windowTimes(tapped)); diff != "" {
			s.Failf("window moved after tap", "(-before +after):\n%s", diff)
		}
		s.Equal("20:00", tapped.Quantized)

		quarter := s.get("?date=2030-01-05&selected=21:15&base=19:00&origin=external_selector")
		s.Equal("19:00", quarter.BaseTime, "quarter-hour selections do not recenter")
		s.False(quarter.Recentered)

		half := s.get("?date=2030-01-05&selected=21:30&base=19:00&origin=external_selector")
		s.Equal("21:30", half.BaseTime)
		s.True(half.Recentered)
		s.Equal([]string{"20:30", "20:45", "21:00", "21:15", "21:30", "21:45", "22:00", "22:15", "22:30"}, windowTimes(half))
	})

	s.Run("sunday inert edge auto-advances", func() {
		body := s.get("?date=2030-01-06&selected=14:30&base=14:00&origin=window_tap")
		s.Equal("11:30", body.SelectedTime)
		s.True(body.AutoAdvanced)
		s.True(body.Window[0].Selected)
		s.Equal("11:30", body.Quantized)
	})

	s.Run("closed monday", func() {
		body := s.get("?date=2030-01-07")
		s.True(body.Closed)
		s.Empty(body.Slots)
		s.Empty(body.Window)
		s.Equal("", body.Quantized)
	})

	s.Run("past dates are closed", func() {
		body := s.get("?date=2030-01-02&selected=19:00&origin=external_selector")
		s.True(body.Past)
		s.True(body.Closed)
		s.Empty(body.Slots)
		s.Empty(body.Window)
		s.Equal("", body.Quantized)
	})

	s.Run("holiday monday opens for the evening", func() {
		body := s.get("?date=2030-04-22")
		s.True(body.IsHoliday)
		s.False(body.Past)
		s.Equal("17:00", body.Slots[0])
		s.Equal("22:00", body.Slots[len(body.Slots)-1])
	})
}

// =============================================================================
// TestSchedule - read-only calendar view
// =============================================================================

func (s *AvailabilitySuite) TestSchedule() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/schedule", nil)

	var body response.ScheduleResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
	s.Equal("UTC", body.TimeZone)
	s.Equal(15, body.StepMinutes)
	s.Len(body.Days, 7)
	s.Equal([]string{"14:30", "22:00"}, body.Days[0].Inert)
	s.NotNil(body.HolidayOverride)
	s.Len(body.Holidays, 21)
}
