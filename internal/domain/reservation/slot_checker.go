package reservation

import (
	"time"

	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/schedule"
	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/slot"
)

type SlotChecker interface {
	CheckSlot(date schedule.Date, t schedule.TimeOfDay, now time.Time) error
}

// EngineSlotChecker accepts exactly the slots the availability engine would offer at now.
type EngineSlotChecker struct {
	engine *slot.Engine
}

func NewEngineSlotChecker(engine *slot.Engine) *EngineSlotChecker {
	return &EngineSlotChecker{engine: engine}
}

func (c *EngineSlotChecker) CheckSlot(date schedule.Date, t schedule.TimeOfDay, now time.Time) error {
	gen := c.engine.Generator()
	if date.Before(gen.Today(now)) {
		return ErrDateInPast
	}
	slots := gen.Generate(date, now)
	if len(slots) == 0 {
		return ErrVenueClosed
	}
	if !slots.Contains(t) {
		return ErrSlotUnavailable
	}
	if c.engine.Inert().IsInert(date.Weekday(), t) {
		return ErrSlotInert
	}
	return nil
}
