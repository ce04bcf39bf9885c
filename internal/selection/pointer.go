package selection

import (
	"menucascade/internal/geom"
	"menucascade/internal/logging/events"
)

// ProcessPointerEvent routes a pointer event into the open menu chain.
// Menu elements never react to raw pointer input themselves; the dispatch
// layer funnels every event through here.
//
// The current path is scanned innermost to outermost and each level's
// children in listing order; the first showing child whose bounds contain
// the pointer receives the event, re-targeted into its local coordinate
// space, along with the resolved path and the manager. At most one child
// is hit per call. When the pointer crosses onto a child that was neither
// the previous leaf nor its parent, synthetic exit and enter events are
// delivered before the real one.
//
// Events whose target is not showing are dropped, as are enter/exit
// phases while a button is held (hover churn during drags). An event that
// hits nothing is left unconsumed.
func (m *Manager) ProcessPointerEvent(ev *PointerEvent) {
	target := ev.Target
	if target == nil {
		return
	}
	tc := target.Component()
	if tc == nil || !tc.Showing() {
		// A release can outlive the component that produced it when
		// the press tore the menu down.
		return
	}
	if (ev.Phase == PhaseEnter || ev.Phase == PhaseExit) && ev.ButtonHeld {
		return
	}

	screen := tc.ScreenBounds().ToScreen(ev.Pos)

	snapshot := m.SelectedPath()
	for i := len(snapshot) - 1; i >= 0; i-- {
		for _, child := range snapshot[i].SubElements() {
			if child == nil {
				continue
			}
			mc := child.Component()
			if mc == nil || !mc.Showing() {
				continue
			}
			bounds := mc.ScreenBounds()
			if !bounds.Contains(screen) {
				continue
			}
			local := bounds.ToLocal(screen)

			trial := make([]Element, i+2)
			copy(trial, snapshot[:i+1])
			trial[i+1] = child

			m.synthesizeCrossing(ev, child, local, trial, i)

			routed := ev.retarget(child, local, ev.Phase)
			child.HandlePointer(routed, trial, m)
			ev.Consume()
			events.Pointer.Hit(i, ev.Phase.String(), screen.X, screen.Y)
			return
		}
	}
	events.Pointer.Miss(ev.Phase.String(), screen.X, screen.Y)
}

// synthesizeCrossing models hover transitions independently of path
// replacement: when the hit child is neither the current leaf nor the
// element just above it, the old leaf gets an exit and the child an enter,
// both carrying the child-local position.
func (m *Manager) synthesizeCrossing(ev *PointerEvent, child Element, local geom.Point, trial []Element, level int) {
	current := m.SelectedPath()
	n := len(current)
	if n == 0 {
		return
	}
	leaf := current[n-1]
	var parent Element
	if n > 1 {
		parent = current[n-2]
	}
	if leaf == child || parent == child {
		return
	}

	exit := ev.retarget(leaf, local, PhaseExit)
	leaf.HandlePointer(exit, trial, m)

	enter := ev.retarget(child, local, PhaseEnter)
	child.HandlePointer(enter, trial, m)

	events.Pointer.HoverCrossing(level)
}
