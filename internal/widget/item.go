package widget

import (
	"github.com/charmbracelet/lipgloss"

	"menucascade/internal/command"
	"menucascade/internal/geom"
	"menucascade/internal/selection"
	"menucascade/internal/theme"
)

// Item is a leaf menu entry. Releasing the pointer on it (or pressing
// enter while it is highlighted) queues its action on the command bus and
// closes the whole hierarchy.
type Item struct {
	id       string
	label    string
	shortcut string
	enabled  bool
	action   command.Action

	frame    frame
	selected bool
	bar      *Bar
	parent   *Menu
}

// NewItem constructs an enabled item.
func NewItem(id, label string, action command.Action) *Item {
	return &Item{id: id, label: label, enabled: true, action: action}
}

// SetEnabled toggles whether the item reacts to input.
func (it *Item) SetEnabled(enabled bool) { it.enabled = enabled }

// WithShortcut records a key binding displayed next to the label. The
// binding also activates the item while no menu is open.
func (it *Item) WithShortcut(key string) *Item {
	it.shortcut = key
	return it
}

// Shortcut returns the bound key, or an empty string.
func (it *Item) Shortcut() string { return it.shortcut }

// ID returns the item identifier.
func (it *Item) ID() string { return it.id }

// Label returns the display label.
func (it *Item) Label() string { return it.label }

// Selected reports whether the item is the current highlight.
func (it *Item) Selected() bool { return it.selected }

func (it *Item) rowLabel() string { return it.label }
func (it *Item) rowHint() string  { return it.shortcut }
func (it *Item) selectable() bool { return it.enabled && it.frame.visible }

func (it *Item) setRowBounds(r geom.Rect, visible bool) {
	it.frame.rect = r
	it.frame.visible = visible
}

func (it *Item) attach(bar *Bar, parent *Menu) {
	it.bar = bar
	it.parent = parent
}

// rowStyle picks the popup row style for the item state.
func (it *Item) rowStyle(st *theme.Styles) *lipgloss.Style {
	switch {
	case !it.enabled:
		return st.DisabledItem
	case it.selected:
		return st.SelectedItem
	default:
		return st.Item
	}
}

// SubElements implements selection.Element; items have no children.
func (it *Item) SubElements() []selection.Element { return nil }

// Component implements selection.Element.
func (it *Item) Component() selection.Component { return &it.frame }

// SelectionChanged implements selection.Element.
func (it *Item) SelectionChanged(selected bool) {
	it.selected = selected
}

// HandlePointer highlights the item on hover and activates it on release.
func (it *Item) HandlePointer(ev *selection.PointerEvent, path []selection.Element, mgr *selection.Manager) {
	switch ev.Phase {
	case selection.PhaseEnter, selection.PhaseMotion, selection.PhaseDrag:
		if it.enabled && !it.selected {
			mgr.SetSelectedPath(path)
		}
	case selection.PhaseExit:
		if it.selected && len(path) > 1 {
			mgr.SetSelectedPath(path[:len(path)-1])
		}
	case selection.PhaseRelease:
		if it.enabled {
			it.activate(mgr)
		}
	}
}

// HandleKey reacts only while the item is the current highlight.
func (it *Item) HandleKey(ev *selection.KeyEvent, path []selection.Element, mgr *selection.Manager) {
	if !isLeaf(mgr, it) {
		return
	}
	switch ev.Msg.String() {
	case "enter":
		ev.Consume()
		if it.enabled {
			it.activate(mgr)
		}
	case "down":
		ev.Consume()
		if it.parent != nil {
			it.parent.moveHighlight(mgr, path, +1)
		}
	case "up":
		ev.Consume()
		if it.parent != nil {
			it.parent.moveHighlight(mgr, path, -1)
		}
	case "esc":
		ev.Consume()
		mgr.SetSelectedPath(path[:len(path)-1])
	case "left":
		// Inside a submenu, left collapses one level. At the top level
		// the parent menu handles left as bar navigation instead.
		if it.parent != nil && !it.parent.inBar() {
			ev.Consume()
			mgr.SetSelectedPath(path[:len(path)-1])
		}
	}
}

func (it *Item) activate(mgr *selection.Manager) {
	if it.bar != nil && it.bar.bus != nil {
		it.bar.bus.Execute(command.Request{ID: it.id, Label: it.label, Handler: it.action})
	}
	mgr.ClearSelectedPath()
}
