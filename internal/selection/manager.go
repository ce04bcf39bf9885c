package selection

import "menucascade/internal/logging/events"

// Manager owns the selected path of a menu hierarchy: the ordered chain of
// currently open elements, outermost first. All mutation goes through
// SetSelectedPath; routing scans operate on snapshots, so a reaction may
// call back into the manager while a scan is in flight and only subsequent
// calls observe the change.
//
// A Manager is single-threaded by contract: every method must be called
// from the goroutine that dispatches input events.
type Manager struct {
	path         []Element
	listeners    []listenerEntry
	nextListener int
}

type listenerEntry struct {
	id int
	fn func()
}

// NewManager returns a manager with an empty selection.
func NewManager() *Manager {
	return &Manager{}
}

// SetSelectedPath replaces the selected path with path (nil means empty).
//
// Elements removed relative to the longest common prefix are notified
// deselected, innermost first, and dropped from the path one by one, so an
// outer element's deselect reaction already observes its inner elements
// gone. Added elements are notified selected, outermost first; nil entries
// in path are placeholders and are skipped. Registered listeners are
// notified exactly once per call, after all element notifications, even
// when the call leaves the path unchanged.
//
// A panicking reaction propagates to the caller and leaves the path
// partially transitioned.
func (m *Manager) SetSelectedPath(path []Element) {
	oldLen := len(m.path)
	common := 0
	for common < len(path) && common < oldLen && m.path[common] == path[common] {
		common++
	}

	for i := oldLen - 1; i >= common; i-- {
		el := m.path[i]
		el.SelectionChanged(false)
		m.path = m.path[:i]
	}

	for i := common; i < len(path); i++ {
		if path[i] == nil {
			continue
		}
		path[i].SelectionChanged(true)
		m.path = append(m.path, path[i])
	}

	events.Selection.Change(oldLen, len(m.path), common)
	m.fireChanged()
}

// SelectedPath returns a snapshot copy of the current path.
func (m *Manager) SelectedPath() []Element {
	snapshot := make([]Element, len(m.path))
	copy(snapshot, m.path)
	return snapshot
}

// ClearSelectedPath closes the whole hierarchy.
func (m *Manager) ClearSelectedPath() {
	events.Selection.Cleared()
	m.SetSelectedPath(nil)
}

// AddListener registers fn to run once per SetSelectedPath call. The
// returned function removes the registration.
func (m *Manager) AddListener(fn func()) (remove func()) {
	m.nextListener++
	id := m.nextListener
	m.listeners = append(m.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		for i, entry := range m.listeners {
			if entry.id == id {
				m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
				return
			}
		}
	}
}

func (m *Manager) fireChanged() {
	snapshot := make([]listenerEntry, len(m.listeners))
	copy(snapshot, m.listeners)
	for i := len(snapshot) - 1; i >= 0; i-- {
		snapshot[i].fn()
	}
}
