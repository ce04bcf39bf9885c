package selection

import (
	tea "github.com/charmbracelet/bubbletea"

	"menucascade/internal/geom"
)

// Phase classifies a pointer event.
type Phase int

const (
	PhasePress Phase = iota
	PhaseRelease
	PhaseMotion
	PhaseDrag
	PhaseEnter
	PhaseExit
)

var phaseNames = map[Phase]string{
	PhasePress:   "press",
	PhaseRelease: "release",
	PhaseMotion:  "motion",
	PhaseDrag:    "drag",
	PhaseEnter:   "enter",
	PhaseExit:    "exit",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// PointerEvent is a pointer interaction in the coordinate space of Target.
// The dispatch layer constructs events targeted at the hierarchy root; the
// router re-targets them at the element it resolves.
type PointerEvent struct {
	// Target is the element whose local coordinate space Pos is in.
	Target Element
	// Pos is the pointer position, local to Target.
	Pos   geom.Point
	Phase Phase
	// ButtonHeld is true while any mouse button is down. Enter/exit
	// phases are suppressed during drags.
	ButtonHeld bool

	consumed bool
}

// Consume marks the event as handled; consumed events are not routed
// further.
func (e *PointerEvent) Consume() { e.consumed = true }

// Consumed reports whether the event has been handled.
func (e *PointerEvent) Consumed() bool { return e.consumed }

// retarget clones the event at a new element, phase and local position.
// The clone's consumed flag starts clear.
func (e *PointerEvent) retarget(target Element, pos geom.Point, phase Phase) *PointerEvent {
	return &PointerEvent{
		Target:     target,
		Pos:        pos,
		Phase:      phase,
		ButtonHeld: e.ButtonHeld,
	}
}

// KeyEvent is a key press offered to elements along the selected path.
type KeyEvent struct {
	Msg tea.KeyMsg

	consumed bool
}

// Consume marks the event as handled; no further element is offered a
// consumed event.
func (e *KeyEvent) Consume() { e.consumed = true }

// Consumed reports whether the event has been handled.
func (e *KeyEvent) Consumed() bool { return e.consumed }
