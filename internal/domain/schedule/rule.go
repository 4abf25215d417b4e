package schedule

import (
	"sort"
	"time"
)

// RuleKind tags the weekday-specific post-processing applied to a generated slot list.
type RuleKind int

const (
	RuleNone RuleKind = iota
	RuleEnsureSundayEdges
	RuleEnsureClosingSlot
)

func (k RuleKind) String() string {
	switch k {
	case RuleEnsureSundayEdges:
		return "ensure_sunday_edges"
	case RuleEnsureClosingSlot:
		return "ensure_closing_slot"
	default:
		return "none"
	}
}

// PostProcessRule guarantees that Ensure times are present, then keeps the list ascending.
type PostProcessRule struct {
	Kind   RuleKind
	Ensure []TimeOfDay
}

func EnsureSundayEdges(lunchClose, dinnerClose TimeOfDay) PostProcessRule {
	return PostProcessRule{Kind: RuleEnsureSundayEdges, Ensure: []TimeOfDay{lunchClose, dinnerClose}}
}

func EnsureClosingSlot(closing TimeOfDay) PostProcessRule {
	return PostProcessRule{Kind: RuleEnsureClosingSlot, Ensure: []TimeOfDay{closing}}
}

// Apply appends missing Ensure times and re-sorts. It does not deduplicate.
func (r PostProcessRule) Apply(slots []TimeOfDay) []TimeOfDay {
	if r.Kind == RuleNone {
		return slots
	}
	for _, t := range r.Ensure {
		if !containsTime(slots, t) {
			slots = append(slots, t)
		}
	}
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Before(slots[j]) })
	return slots
}

// RuleTable maps each weekday to its post-processing rule.
type RuleTable [7]PostProcessRule

func (rt RuleTable) For(day time.Weekday) PostProcessRule {
	if day < time.Sunday || day > time.Saturday {
		return PostProcessRule{}
	}
	return rt[day]
}

func containsTime(slots []TimeOfDay, t TimeOfDay) bool {
	for _, s := range slots {
		if s == t {
			return true
		}
	}
	return false
}
