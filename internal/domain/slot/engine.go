package slot

import (
	"time"

	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/schedule"
)

// Engine runs one evaluation cycle over a date: generation, selection fixes, centering, quantization.
type Engine struct {
	generator *Generator
	selector  *Selector
	inert     InertPolicy
}

func NewEngine(generator *Generator, selector *Selector, inert InertPolicy) *Engine {
	return &Engine{generator: generator, selector: selector, inert: inert}
}

func (e *Engine) Generator() *Generator { return e.generator }
func (e *Engine) Selector() *Selector   { return e.selector }
func (e *Engine) Inert() InertPolicy    { return e.inert }

// Input is the externally held selection state for one cycle.
type Input struct {
	Date     schedule.Date
	Selected schedule.TimeOfDay
	Base     schedule.TimeOfDay
	Origin   Origin
}

type Evaluation struct {
	Date         schedule.Date
	Holiday      bool
	Today        bool
	Slots        List
	Selected     schedule.TimeOfDay
	Base         schedule.TimeOfDay
	Window       Window
	Quantized    schedule.TimeOfDay
	Snapped      bool
	AutoAdvanced bool
	Recentered   bool
}

func (ev Evaluation) Closed() bool { return len(ev.Slots) == 0 }

// Evaluate is deterministic for a given input and now.
func (e *Engine) Evaluate(in Input, now time.Time) Evaluation {
	slots := e.generator.Generate(in.Date, now)
	ev := Evaluation{
		Date:     in.Date,
		Holiday:  e.generator.Calendar().IsHoliday(in.Date),
		Today:    e.generator.Today(now) == in.Date,
		Slots:    slots,
		Selected: in.Selected,
		Base:     in.Base,
	}
	if len(slots) == 0 {
		ev.Window = Window{Base: in.Base, Slots: List{}}
		return ev
	}

	selected := in.Selected
	if selected.IsZero() {
		selected = e.generator.ClockTime(now).FloorTo(e.generator.Step())
	}
	if !slots.Contains(selected) {
		selected = slots[0]
		ev.Snapped = true
	}
	if advanced, ok := e.inert.AutoAdvance(in.Date.Weekday(), selected, slots); ok {
		selected = advanced
		ev.AutoAdvanced = true
	}

	// corrections are made by the engine, not by a tap
	change := TimeChange{Time: selected, Origin: in.Origin}
	if (ev.Snapped || ev.AutoAdvanced) && in.Origin == OriginWindowTap {
		change.Origin = OriginExternalSelector
	}
	ev.Base, ev.Recentered = NextBase(change, in.Base)

	ev.Selected = selected
	ev.Window = e.selector.Recompute(slots, ev.Base)
	ev.Base = ev.Window.Base
	ev.Quantized = Quantize(selected, slots)
	return ev
}
