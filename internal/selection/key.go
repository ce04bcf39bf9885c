package selection

import "menucascade/internal/logging/events"

// ProcessKeyEvent offers a key event to candidate elements along the open
// menu chain until one consumes it.
//
// The scan order matches ProcessPointerEvent: path levels innermost to
// outermost, children in listing order, nil and hidden children skipped.
// Unlike pointer routing this is a broadcast: every candidate is offered
// the event, each with its own resolved path, until the consumed flag is
// set. With nothing consuming it the call returns and the event stays
// unconsumed.
func (m *Manager) ProcessKeyEvent(ev *KeyEvent) {
	snapshot := m.SelectedPath()
	offers := 0
	for i := len(snapshot) - 1; i >= 0; i-- {
		for _, child := range snapshot[i].SubElements() {
			if child == nil {
				continue
			}
			mc := child.Component()
			if mc == nil || !mc.Showing() {
				continue
			}

			trial := make([]Element, i+2)
			copy(trial, snapshot[:i+1])
			trial[i+1] = child

			offers++
			child.HandleKey(ev, trial, m)
			if ev.Consumed() {
				events.Key.Consumed(i, offers, ev.Msg.String())
				return
			}
		}
	}
	events.Key.Unconsumed(offers, ev.Msg.String())
}
