package widget

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"menucascade/internal/command"
	"menucascade/internal/geom"
	"menucascade/internal/selection"
	"menucascade/internal/theme"
)

// Bar is the horizontal root of the menu hierarchy. It occupies the top
// screen row and always sits at index 0 of a non-empty selected path; its
// children are top-level menus.
type Bar struct {
	frame  frame
	menus  []*Menu
	screen geom.Rect
	bus    *command.Bus
}

// NewBar constructs an empty menu bar. Item activations are queued on bus.
func NewBar(bus *command.Bus) *Bar {
	return &Bar{bus: bus}
}

// AddMenu appends a top-level menu.
func (b *Bar) AddMenu(menus ...*Menu) *Bar {
	for _, m := range menus {
		m.attach(b, nil)
		b.menus = append(b.menus, m)
	}
	return b
}

// Menus returns the top-level menus in bar order.
func (b *Bar) Menus() []*Menu { return b.menus }

// SetSize lays the bar out for a terminal of w×h cells. Title cells are
// placed left to right; open popups are re-laid out so their hit rects
// track the new screen bounds.
func (b *Bar) SetSize(w, h int) {
	b.screen = geom.Rect{X: 0, Y: 0, W: w, H: h}
	b.frame.rect = geom.Rect{X: 0, Y: 0, W: w, H: 1}
	b.frame.visible = w > 0 && h > 0

	x := 0
	for _, m := range b.menus {
		cw := ansi.StringWidth(m.title) + 2
		m.setRowBounds(geom.Rect{X: x, Y: 0, W: cw, H: 1}, b.frame.visible)
		x += cw
	}
	for _, m := range b.menus {
		if m.open {
			m.layoutPopup()
		}
	}
}

// Screen returns the last laid-out screen bounds.
func (b *Bar) Screen() geom.Rect { return b.screen }

// SubElements implements selection.Element.
func (b *Bar) SubElements() []selection.Element {
	out := make([]selection.Element, len(b.menus))
	for i, m := range b.menus {
		out[i] = m
	}
	return out
}

// Component implements selection.Element.
func (b *Bar) Component() selection.Component { return &b.frame }

// HandlePointer implements selection.Element. The bar is only ever the
// root of a path, never a routed child, so there is nothing to do.
func (b *Bar) HandlePointer(ev *selection.PointerEvent, path []selection.Element, mgr *selection.Manager) {
}

// HandleKey implements selection.Element.
func (b *Bar) HandleKey(ev *selection.KeyEvent, path []selection.Element, mgr *selection.Manager) {
}

// SelectionChanged implements selection.Element.
func (b *Bar) SelectionChanged(selected bool) {}

// ActivateShortcut runs the enabled item bound to key anywhere in the
// hierarchy and reports whether a binding fired. Bindings only apply
// while no menu is open; routed keys take priority otherwise.
func (b *Bar) ActivateShortcut(mgr *selection.Manager, key string) bool {
	if key == "" {
		return false
	}
	for _, m := range b.menus {
		if it := findShortcut(m, key); it != nil {
			it.activate(mgr)
			return true
		}
	}
	return false
}

func findShortcut(m *Menu, key string) *Item {
	for _, r := range m.rows {
		switch v := r.(type) {
		case *Item:
			if v.enabled && v.shortcut == key {
				return v
			}
		case *Menu:
			if it := findShortcut(v, key); it != nil {
				return it
			}
		}
	}
	return nil
}

// selectNeighbor opens the bar menu delta positions away from m, wrapping
// around the ends.
func (b *Bar) selectNeighbor(mgr *selection.Manager, m *Menu, delta int) {
	if len(b.menus) == 0 {
		return
	}
	idx := -1
	for i, candidate := range b.menus {
		if candidate == m {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	next := b.menus[(idx+delta+len(b.menus))%len(b.menus)]
	mgr.SetSelectedPath([]selection.Element{b, next})
}

// View renders the bar row, padded to the screen width.
func (b *Bar) View(st *theme.Styles) string {
	var sb strings.Builder
	used := 0
	for _, m := range b.menus {
		var cell string
		if m.open {
			cell = st.BarTitleOpen.Render(m.title)
		} else {
			cell = st.BarTitle.Render(m.title)
		}
		sb.WriteString(cell)
		used += ansi.StringWidth(m.title) + 2
	}
	if pad := b.screen.W - used; pad > 0 {
		sb.WriteString(st.Bar.Render(strings.Repeat(" ", pad)))
	}
	return sb.String()
}
