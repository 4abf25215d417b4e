package slot

import (
	"sort"

	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/schedule"
)

// List is an ascending, duplicate-free sequence of slots for one date.
type List []schedule.TimeOfDay

func (l List) IndexOf(t schedule.TimeOfDay) int {
	for i, s := range l {
		if s == t {
			return i
		}
	}
	return -1
}

func (l List) Contains(t schedule.TimeOfDay) bool {
	return l.IndexOf(t) >= 0
}

// Nearest returns the index with the smallest distance to t; ties go to the lowest index.
func (l List) Nearest(t schedule.TimeOfDay) int {
	if len(l) == 0 {
		return -1
	}
	best, minDiff := 0, -1
	for i, s := range l {
		if d := s.Distance(t); minDiff < 0 || d < minDiff {
			best, minDiff = i, d
		}
	}
	return best
}

// HalfHours keeps the :00 and :30 slots.
func (l List) HalfHours() List {
	out := make(List, 0, len(l)/2+1)
	for _, s := range l {
		if s.IsHalfHour() {
			out = append(out, s)
		}
	}
	return out
}

func (l List) Equal(o List) bool {
	if len(l) != len(o) {
		return false
	}
	for i := range l {
		if l[i] != o[i] {
			return false
		}
	}
	return true
}

func (l List) Strings() []string {
	out := make([]string, len(l))
	for i, s := range l {
		out[i] = s.String()
	}
	return out
}

// normalize sorts ascending and drops duplicates in place.
func normalize(times []schedule.TimeOfDay) List {
	sort.SliceStable(times, func(i, j int) bool { return times[i].Before(times[j]) })
	out := times[:0]
	for _, t := range times {
		if len(out) > 0 && t == out[len(out)-1] {
			continue
		}
		out = append(out, t)
	}
	return List(out)
}
