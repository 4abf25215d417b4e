//go:build unit

package slot_test

import (
	"testing"

	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/schedule"
	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/slot"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector_Recompute(t *testing.T) {
	sel := slot.NewSelector(slot.DefaultWindowSize)
	slots := run("17:00", 20, 15) // 17:00 .. 21:45

	cases := []struct {
		name      string
		center    schedule.TimeOfDay
		wantStart int
	}{
		{name: "centered in the middle", center: slots[10], wantStart: 6},
		{name: "start boundary", center: slots[0], wantStart: 0},
		{name: "near start", center: slots[2], wantStart: 0},
		{name: "end boundary", center: slots[19], wantStart: 11},
		{name: "near end pulls start back", center: slots[17], wantStart: 11},
		{name: "absent center snaps to nearest", center: schedule.MustTime("19:52"), wantStart: 7},
		{name: "absent center before the list", center: schedule.MustTime("12:00"), wantStart: 0},
		{name: "absent center after the list", center: schedule.MustTime("23:00"), wantStart: 11},
		{name: "unset center anchors the first slot", center: schedule.TimeOfDay{}, wantStart: 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual := sel.Recompute(slots, c.center)
			require.Len(t, actual.Slots, 9)
			assert.Equal(t, c.wantStart, actual.Start)
			if diff := cmp.Diff(slots[c.wantStart:c.wantStart+9], actual.Slots, cmpOpts...); diff != "" {
				t.Errorf("window mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("base is the requested center", func(t *testing.T) {
		assert.Equal(t, slots[10], sel.Recompute(slots, slots[10]).Base)
		assert.Equal(t, "19:52", sel.Recompute(slots, schedule.MustTime("19:52")).Base.String())
		assert.Equal(t, slots[0], sel.Recompute(slots, schedule.TimeOfDay{}).Base)
	})

	t.Run("nearest tie prefers the lower index", func(t *testing.T) {
		halfHours := run("12:00", 20, 30) // 12:00 .. 21:30
		actual := sel.Recompute(halfHours, schedule.MustTime("17:15"))
		// 17:00 (index 10) wins the tie against 17:30
		assert.Equal(t, 6, actual.Start)
	})

	t.Run("short list is returned whole", func(t *testing.T) {
		short := run("17:00", 5, 15)
		actual := sel.Recompute(short, short[3])
		assert.Equal(t, short.Strings(), actual.Slots.Strings())
		assert.Equal(t, 0, actual.Start)
	})

	t.Run("empty list yields an empty window", func(t *testing.T) {
		actual := sel.Recompute(slot.List{}, schedule.MustTime("18:00"))
		assert.Empty(t, actual.Slots)
		assert.NotNil(t, actual.Slots)
	})

	t.Run("idempotent", func(t *testing.T) {
		first := sel.Recompute(slots, slots[12])
		second := sel.Recompute(slots, slots[12])
		assert.True(t, first.Equal(second))
		if diff := cmp.Diff(first, second, cmpOpts...); diff != "" {
			t.Errorf("recompute not idempotent (-first +second):\n%s", diff)
		}
	})

	t.Run("window does not alias the slot list", func(t *testing.T) {
		actual := sel.Recompute(slots, slots[10])
		actual.Slots[0] = schedule.MustTime("00:00")
		assert.Equal(t, "18:30", slots[6].String())
	})

	t.Run("non-positive size falls back to the default", func(t *testing.T) {
		assert.Equal(t, slot.DefaultWindowSize, slot.NewSelector(0).Size())
	})

	t.Run("smaller window", func(t *testing.T) {
		actual := slot.NewSelector(5).Recompute(slots, slots[10])
		assert.Equal(t, 8, actual.Start)
		assert.Len(t, actual.Slots, 5)
	})
}

func TestNextBase(t *testing.T) {
	base := schedule.MustTime("18:00")

	cases := []struct {
		name        string
		change      slot.TimeChange
		previous    schedule.TimeOfDay
		want        string
		wantChanged bool
	}{
		{
			name:     "window tap never recenters",
			change:   slot.TimeChange{Time: schedule.MustTime("19:30"), Origin: slot.OriginWindowTap},
			previous: base, want: "18:00",
		},
		{
			name:     "external quarter hour keeps the base",
			change:   slot.TimeChange{Time: schedule.MustTime("19:15"), Origin: slot.OriginExternalSelector},
			previous: base, want: "18:00",
		},
		{
			name:     "external same time keeps the base",
			change:   slot.TimeChange{Time: base, Origin: slot.OriginExternalSelector},
			previous: base, want: "18:00",
		},
		{
			name:     "external half hour recenters",
			change:   slot.TimeChange{Time: schedule.MustTime("19:30"), Origin: slot.OriginExternalSelector},
			previous: base, want: "19:30", wantChanged: true,
		},
		{
			name:     "initial seeds any time",
			change:   slot.TimeChange{Time: schedule.MustTime("19:15"), Origin: slot.OriginInitial},
			previous: base, want: "19:15", wantChanged: true,
		},
		{
			name:     "missing base is seeded",
			change:   slot.TimeChange{Time: schedule.MustTime("19:45"), Origin: slot.OriginWindowTap},
			previous: schedule.TimeOfDay{}, want: "19:45", wantChanged: true,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, changed := slot.NextBase(c.change, c.previous)
			assert.Equal(t, c.want, actual.String())
			assert.Equal(t, c.wantChanged, changed)
		})
	}

	t.Run("selector contract", func(t *testing.T) {
		sel := slot.NewSelector(slot.DefaultWindowSize)
		next, changed := sel.OnExternalTimeChange(schedule.MustTime("20:00"), base, true)
		assert.False(t, changed)
		assert.Equal(t, base, next)

		next, changed = sel.OnExternalTimeChange(schedule.MustTime("20:00"), base, false)
		assert.True(t, changed)
		assert.Equal(t, "20:00", next.String())
	})
}

func TestParseOrigin(t *testing.T) {
	for in, want := range map[string]slot.Origin{
		"":                  slot.OriginInitial,
		"initial":           slot.OriginInitial,
		"window_tap":        slot.OriginWindowTap,
		"external_selector": slot.OriginExternalSelector,
	} {
		actual, err := slot.ParseOrigin(in)
		require.NoError(t, err)
		assert.Equal(t, want, actual)
	}
	assert.Equal(t, "window_tap", slot.OriginWindowTap.String())

	_, err := slot.ParseOrigin("grid")
	require.ErrorIs(t, err, slot.ErrInvalidOrigin)
}
