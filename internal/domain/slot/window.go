package slot

import (
	"errors"
	"fmt"

	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/schedule"
)

const DefaultWindowSize = 9

// nearestAnchorOffset is how many slots precede the nearest match when the center is not in the list.
const nearestAnchorOffset = 4

var ErrInvalidOrigin = errors.New("invalid time change origin")

// Window is the contiguous run of slots shown for direct selection, centered on Base.
type Window struct {
	Base  schedule.TimeOfDay
	Start int
	Slots List
}

func (w Window) Equal(o Window) bool {
	return w.Base == o.Base && w.Start == o.Start && w.Slots.Equal(o.Slots)
}

type Selector struct {
	size int
}

func NewSelector(size int) *Selector {
	if size < 1 {
		size = DefaultWindowSize
	}
	return &Selector{size: size}
}

func (s *Selector) Size() int { return s.size }

// Recompute builds the window around center. An unset center anchors on the first slot.
func (s *Selector) Recompute(slots List, center schedule.TimeOfDay) Window {
	if len(slots) == 0 {
		return Window{Base: center, Slots: List{}}
	}
	if center.IsZero() {
		center = slots[0]
	}

	var start int
	if idx := slots.IndexOf(center); idx >= 0 {
		start = max(0, idx-(s.size-1)/2)
	} else {
		start = max(0, slots.Nearest(center)-min(nearestAnchorOffset, s.size-1))
	}
	end := min(len(slots)-1, start+s.size-1)
	if end-start < s.size-1 {
		start = max(0, end-s.size+1)
	}

	out := make(List, end-start+1)
	copy(out, slots[start:end+1])
	return Window{Base: center, Start: start, Slots: out}
}

// OnExternalTimeChange reports the new base for a selection change, or false when it stays.
func (s *Selector) OnExternalTimeChange(newTime, previousBase schedule.TimeOfDay, cameFromWindowTap bool) (schedule.TimeOfDay, bool) {
	origin := OriginExternalSelector
	if cameFromWindowTap {
		origin = OriginWindowTap
	}
	return NextBase(TimeChange{Time: newTime, Origin: origin}, previousBase)
}

// Origin tags where a selection change came from.
type Origin int

const (
	OriginInitial Origin = iota
	OriginWindowTap
	OriginExternalSelector
)

func (o Origin) String() string {
	switch o {
	case OriginWindowTap:
		return "window_tap"
	case OriginExternalSelector:
		return "external_selector"
	default:
		return "initial"
	}
}

func ParseOrigin(s string) (Origin, error) {
	switch s {
	case "", "initial":
		return OriginInitial, nil
	case "window_tap":
		return OriginWindowTap, nil
	case "external_selector":
		return OriginExternalSelector, nil
	default:
		return OriginInitial, fmt.Errorf("%w: %q", ErrInvalidOrigin, s)
	}
}

type TimeChange struct {
	Time   schedule.TimeOfDay
	Origin Origin
}

// NextBase decides whether a selection change recenters the window.
// Taps inside the window never move it; other changes move it only onto :00 or :30.
// The initial change, or one arriving without a base, always seeds the base.
func NextBase(change TimeChange, previousBase schedule.TimeOfDay) (schedule.TimeOfDay, bool) {
	if change.Origin == OriginInitial || previousBase.IsZero() {
		return change.Time, change.Time != previousBase
	}
	if change.Origin == OriginWindowTap {
		return previousBase, false
	}
	if change.Time == previousBase || !change.Time.IsHalfHour() {
		return previousBase, false
	}
	return change.Time, true
}
