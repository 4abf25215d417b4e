package slot

import (
	"time"

	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/schedule"
)

// InertPolicy lists slots that are shown but cannot be chosen on a given weekday.
type InertPolicy struct {
	byDay [7][]schedule.TimeOfDay
}

func NewInertPolicy(byDay map[time.Weekday][]schedule.TimeOfDay) InertPolicy {
	var p InertPolicy
	for day, times := range byDay {
		if day < time.Sunday || day > time.Saturday {
			continue
		}
		p.byDay[day] = append([]schedule.TimeOfDay(nil), times...)
	}
	return p
}

// DefaultInertPolicy greys out the Sunday closing edges.
func DefaultInertPolicy() InertPolicy {
	return NewInertPolicy(map[time.Weekday][]schedule.TimeOfDay{
		time.Sunday: {schedule.MustTime("14:30"), schedule.MustTime("22:00")},
	})
}

func (p InertPolicy) IsInert(day time.Weekday, t schedule.TimeOfDay) bool {
	if day < time.Sunday || day > time.Saturday || t.IsZero() {
		return false
	}
	for _, inert := range p.byDay[day] {
		if inert == t {
			return true
		}
	}
	return false
}

// AutoAdvance moves an inert selection to the first selectable slot.
// It reports false when the selection is fine or no selectable slot exists.
func (p InertPolicy) AutoAdvance(day time.Weekday, selected schedule.TimeOfDay, slots List) (schedule.TimeOfDay, bool) {
	if !p.IsInert(day, selected) || len(slots) == 0 {
		return selected, false
	}
	for _, s := range slots {
		if !p.IsInert(day, s) {
			return s, true
		}
	}
	return selected, false
}
