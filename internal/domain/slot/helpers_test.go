//go:build unit

package slot_test

import (
	"time"

	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/schedule"
	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/slot"

	"github.com/google/go-cmp/cmp"
)

var cmpOpts = []cmp.Option{cmp.AllowUnexported(schedule.TimeOfDay{})}

func list(values ...string) slot.List {
	out := make(slot.List, len(values))
	for i, v := range values {
		out[i] = schedule.MustTime(v)
	}
	return out
}

// run builds count slots starting at first, step minutes apart.
func run(first string, count, step int) slot.List {
	start := schedule.MustTime(first).Minutes()
	out := make(slot.List, count)
	for i := range out {
		t, err := schedule.FromMinutes(start + i*step)
		if err != nil {
			panic(err)
		}
		out[i] = t
	}
	return out
}

func at(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func newGenerator(opts ...slot.Option) *slot.Generator {
	return slot.NewGenerator(schedule.DefaultCalendar(), append([]slot.Option{slot.WithLocation(time.UTC)}, opts...)...)
}

// 2026-10-18 is a Sunday.
const (
	sunday     = "2026-10-18"
	monday     = "2026-10-19"
	tuesday    = "2026-10-20"
	saturday   = "2026-10-24"
	easterMon  = "2025-04-21"
	plainMon   = "2025-04-28"
	farFutureT = "2030-01-01 09:00"
)
