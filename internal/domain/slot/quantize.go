package slot

import "github.com/ngocduc1504/reservierung-dionysos/internal/domain/schedule"

// Quantize maps t onto the half-hour slots of the list.
// An empty result means there is nothing to choose from.
func Quantize(t schedule.TimeOfDay, slots List) schedule.TimeOfDay {
	candidates := slots.HalfHours()
	if len(candidates) == 0 {
		return schedule.TimeOfDay{}
	}
	if t.IsZero() {
		return candidates[0]
	}
	if candidates.Contains(t) {
		return t
	}
	return candidates[candidates.Nearest(t)]
}
