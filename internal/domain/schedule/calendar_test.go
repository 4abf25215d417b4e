//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriod(t *testing.T) {
	t.Run("open equal to close is allowed", func(t *testing.T) {
		p, err := schedule.ParsePeriod("12:00", "12:00")
		require.NoError(t, err)
		assert.Equal(t, "12:00-12:00", p.String())
	})

	t.Run("close before open is rejected", func(t *testing.T) {
		_, err := schedule.ParsePeriod("22:00", "17:00")
		require.ErrorIs(t, err, schedule.ErrInvalidPeriod)
	})

	t.Run("malformed bound is rejected", func(t *testing.T) {
		_, err := schedule.ParsePeriod("17:00", "22")
		require.ErrorIs(t, err, schedule.ErrInvalidTimeFormat)
	})
}

func TestWeeklySchedule_Validate(t *testing.T) {
	require.NoError(t, schedule.DefaultWeeklySchedule().Validate())

	var overlapping schedule.WeeklySchedule
	overlapping[time.Friday] = []schedule.Period{
		schedule.MustPeriod("17:00", "20:00"),
		schedule.MustPeriod("19:00", "22:00"),
	}
	require.ErrorIs(t, overlapping.Validate(), schedule.ErrOverlappingPeriod)

	var unordered schedule.WeeklySchedule
	unordered[time.Sunday] = []schedule.Period{
		schedule.MustPeriod("17:00", "22:00"),
		schedule.MustPeriod("11:30", "14:30"),
	}
	require.ErrorIs(t, unordered.Validate(), schedule.ErrOverlappingPeriod)
}

func TestCalendar(t *testing.T) {
	cal := schedule.DefaultCalendar()

	t.Run("regular periods per weekday", func(t *testing.T) {
		assert.Empty(t, cal.PeriodsFor(time.Monday))
		assert.Equal(t, []schedule.Period{
			schedule.MustPeriod("11:30", "14:30"),
			schedule.MustPeriod("17:00", "22:00"),
		}, cal.PeriodsFor(time.Sunday))
		for _, day := range []time.Weekday{time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday} {
			assert.Equal(t, []schedule.Period{schedule.MustPeriod("17:00", "22:30")}, cal.PeriodsFor(day), day.String())
		}
	})

	t.Run("holiday lookup", func(t *testing.T) {
		assert.True(t, cal.IsHoliday(schedule.MustDate("2025-04-21")))
		assert.True(t, cal.IsHoliday(schedule.MustDate("2024-10-31")))
		assert.False(t, cal.IsHoliday(schedule.MustDate("2025-04-28")))
	})

	t.Run("override only for the overridden weekday", func(t *testing.T) {
		periods, ok := cal.HolidayOverridePeriods(time.Monday)
		require.True(t, ok)
		assert.Equal(t, []schedule.Period{schedule.MustPeriod("17:00", "22:00")}, periods)

		_, ok = cal.HolidayOverridePeriods(time.Friday)
		assert.False(t, ok)
	})

	t.Run("resolve applies holiday monday override", func(t *testing.T) {
		assert.Empty(t, cal.ResolvePeriods(schedule.MustDate("2025-04-28")))
		assert.Equal(t, []schedule.Period{schedule.MustPeriod("17:00", "22:00")},
			cal.ResolvePeriods(schedule.MustDate("2025-04-21")))
	})

	t.Run("holidays on other weekdays keep regular periods", func(t *testing.T) {
		// 2025-04-18 Good Friday
		assert.Equal(t, cal.PeriodsFor(time.Friday), cal.ResolvePeriods(schedule.MustDate("2025-04-18")))
		// 2025-10-03 German Unity Day, Friday
		assert.Equal(t, cal.PeriodsFor(time.Friday), cal.ResolvePeriods(schedule.MustDate("2025-10-03")))
	})

	t.Run("returned periods are copies", func(t *testing.T) {
		periods := cal.PeriodsFor(time.Sunday)
		periods[0] = schedule.MustPeriod("00:00", "00:00")
		assert.Equal(t, schedule.MustPeriod("11:30", "14:30"), cal.PeriodsFor(time.Sunday)[0])
	})

	t.Run("with holidays swaps the set", func(t *testing.T) {
		monday := schedule.MustDate("2026-10-19")
		custom := cal.WithHolidays(schedule.NewHolidayCalendar(monday))
		assert.True(t, custom.IsHoliday(monday))
		assert.False(t, custom.IsHoliday(schedule.MustDate("2025-04-21")))
		assert.False(t, cal.IsHoliday(monday))
	})

	t.Run("invalid override weekday", func(t *testing.T) {
		_, err := schedule.NewCalendar(schedule.WeeklySchedule{}, schedule.NewHolidayCalendar(),
			&schedule.HolidayOverride{Weekday: time.Weekday(9)}, schedule.RuleTable{})
		require.ErrorIs(t, err, schedule.ErrInvalidPeriod)
	})
}

func TestHolidayCalendar(t *testing.T) {
	hc, err := schedule.ParseHolidayCalendar([]string{"2026-12-25", "2026-01-01", "2026-12-25"})
	require.NoError(t, err)
	assert.Equal(t, 2, hc.Len())
	assert.Equal(t, []schedule.Date{schedule.MustDate("2026-01-01"), schedule.MustDate("2026-12-25")}, hc.Dates())

	merged := schedule.DefaultHolidays().Merge(hc)
	assert.Equal(t, schedule.DefaultHolidays().Len()+2, merged.Len())

	_, err = schedule.ParseHolidayCalendar([]string{"2026-13-01"})
	require.ErrorIs(t, err, schedule.ErrInvalidDateFormat)
}

func TestRuleTable(t *testing.T) {
	rules := schedule.DefaultRuleTable()

	assert.Equal(t, schedule.RuleEnsureSundayEdges, rules.For(time.Sunday).Kind)
	assert.Equal(t, schedule.RuleNone, rules.For(time.Monday).Kind)
	for _, day := range []time.Weekday{time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday} {
		assert.Equal(t, schedule.RuleEnsureClosingSlot, rules.For(day).Kind, day.String())
	}

	t.Run("apply inserts missing times in order", func(t *testing.T) {
		in := []schedule.TimeOfDay{schedule.MustTime("21:30"), schedule.MustTime("14:00")}
		out := rules.For(time.Sunday).Apply(in)
		assert.Equal(t, []schedule.TimeOfDay{
			schedule.MustTime("14:00"),
			schedule.MustTime("14:30"),
			schedule.MustTime("21:30"),
			schedule.MustTime("22:00"),
		}, out)
	})

	t.Run("apply is idempotent", func(t *testing.T) {
		in := []schedule.TimeOfDay{schedule.MustTime("22:15"), schedule.MustTime("22:30")}
		out := rules.For(time.Friday).Apply(in)
		assert.Equal(t, in, out)
		assert.Equal(t, out, rules.For(time.Friday).Apply(out))
	})

	t.Run("none leaves input untouched", func(t *testing.T) {
		in := []schedule.TimeOfDay{schedule.MustTime("19:00")}
		assert.Equal(t, in, rules.For(time.Monday).Apply(in))
	})
}
