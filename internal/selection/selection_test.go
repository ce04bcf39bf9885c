package selection

import (
	"fmt"

	"menucascade/internal/geom"
)

// fakeComponent is a settable stand-in for a widget's screen face.
type fakeComponent struct {
	showing bool
	bounds  geom.Rect
}

func (c *fakeComponent) Showing() bool           { return c.showing }
func (c *fakeComponent) ScreenBounds() geom.Rect { return c.bounds }

// fakeElement records every notification and delivery it receives into a
// shared journal so tests can assert exact ordering.
type fakeElement struct {
	name     string
	comp     *fakeComponent
	children []Element
	journal  *[]string

	onPointer func(ev *PointerEvent, path []Element, mgr *Manager)
	onKey     func(ev *KeyEvent, path []Element, mgr *Manager)
	onSelect  func(selected bool)
}

func newFakeElement(name string, journal *[]string) *fakeElement {
	return &fakeElement{
		name:    name,
		comp:    &fakeComponent{showing: true},
		journal: journal,
	}
}

func (e *fakeElement) at(r geom.Rect) *fakeElement {
	e.comp.bounds = r
	return e
}

func (e *fakeElement) record(entry string) {
	if e.journal != nil {
		*e.journal = append(*e.journal, entry)
	}
}

func (e *fakeElement) SubElements() []Element { return e.children }
func (e *fakeElement) Component() Component   { return e.comp }

func (e *fakeElement) HandlePointer(ev *PointerEvent, path []Element, mgr *Manager) {
	e.record(fmt.Sprintf("%s:pointer:%s@%d,%d", e.name, ev.Phase, ev.Pos.X, ev.Pos.Y))
	if e.onPointer != nil {
		e.onPointer(ev, path, mgr)
	}
}

func (e *fakeElement) HandleKey(ev *KeyEvent, path []Element, mgr *Manager) {
	e.record(e.name + ":key")
	if e.onKey != nil {
		e.onKey(ev, path, mgr)
	}
}

func (e *fakeElement) SelectionChanged(selected bool) {
	if selected {
		e.record(e.name + ":selected")
	} else {
		e.record(e.name + ":deselected")
	}
	if e.onSelect != nil {
		e.onSelect(selected)
	}
}

func pathNames(path []Element) []string {
	names := make([]string, 0, len(path))
	for _, el := range path {
		if el == nil {
			names = append(names, "<nil>")
			continue
		}
		names = append(names, el.(*fakeElement).name)
	}
	return names
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
