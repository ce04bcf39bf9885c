package widget

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"menucascade/internal/format/table"
	"menucascade/internal/geom"
	"menucascade/internal/logging/events"
	"menucascade/internal/selection"
	"menucascade/internal/theme"
)

// Menu is a popup menu. On the bar it occupies a title cell; nested inside
// another popup it occupies a row. Selecting a menu opens its popup and
// lays out the child rows; deselecting closes it and resets the filter.
type Menu struct {
	id    string
	title string

	frame frame
	popup geom.Rect
	open  bool

	rows     []row // nil rows are separators
	laidOut  []row // rows of the last layout pass, in display order
	rowTexts []string
	filter   string

	bar    *Bar
	parent *Menu
}

// NewMenu constructs an empty menu.
func NewMenu(id, title string) *Menu {
	return &Menu{id: id, title: title}
}

// AddItem appends a leaf entry.
func (m *Menu) AddItem(items ...*Item) *Menu {
	for _, it := range items {
		m.addRow(it)
	}
	return m
}

// AddMenu appends a nested submenu row.
func (m *Menu) AddMenu(sub *Menu) *Menu {
	m.addRow(sub)
	return m
}

// AddSeparator appends a non-interactive divider row.
func (m *Menu) AddSeparator() *Menu {
	m.rows = append(m.rows, nil)
	return m
}

func (m *Menu) addRow(r row) {
	m.rows = append(m.rows, r)
	if m.bar != nil {
		r.attach(m.bar, m)
	}
}

// ID returns the menu identifier.
func (m *Menu) ID() string { return m.id }

// Title returns the display title.
func (m *Menu) Title() string { return m.title }

// Open reports whether the popup is currently open.
func (m *Menu) Open() bool { return m.open }

// Filter returns the active type-ahead query.
func (m *Menu) Filter() string { return m.filter }

// PopupBounds returns the popup frame of the last layout pass.
func (m *Menu) PopupBounds() geom.Rect { return m.popup }

func (m *Menu) inBar() bool { return m.parent == nil }

func (m *Menu) rowLabel() string { return m.title }
func (m *Menu) rowHint() string  { return "▸" }
func (m *Menu) selectable() bool { return m.frame.visible }

func (m *Menu) setRowBounds(r geom.Rect, visible bool) {
	m.frame.rect = r
	m.frame.visible = visible
}

func (m *Menu) attach(bar *Bar, parent *Menu) {
	m.bar = bar
	m.parent = parent
	for _, r := range m.rows {
		if r != nil {
			r.attach(bar, m)
		}
	}
}

// SubElements implements selection.Element. Separator slots surface as nil
// placeholders, which every routing scan skips.
func (m *Menu) SubElements() []selection.Element {
	out := make([]selection.Element, len(m.rows))
	for i, r := range m.rows {
		if r != nil {
			out[i] = r
		}
	}
	return out
}

// Component implements selection.Element.
func (m *Menu) Component() selection.Component { return &m.frame }

// SelectionChanged opens or closes the popup.
func (m *Menu) SelectionChanged(selected bool) {
	if selected {
		m.open = true
		m.layoutPopup()
		return
	}
	m.open = false
	if m.filter != "" {
		m.filter = ""
		events.Filter.Cleared(m.id)
	}
	m.laidOut = nil
	m.rowTexts = nil
	m.popup = geom.Rect{}
	for _, r := range m.rows {
		if r != nil {
			r.setRowBounds(geom.Rect{}, false)
		}
	}
}

// HandlePointer opens the popup on press or hover. A press on an already
// open menu closes it again.
func (m *Menu) HandlePointer(ev *selection.PointerEvent, path []selection.Element, mgr *selection.Manager) {
	switch ev.Phase {
	case selection.PhasePress:
		if m.open {
			mgr.SetSelectedPath(path[:len(path)-1])
			return
		}
		mgr.SetSelectedPath(path)
	case selection.PhaseEnter, selection.PhaseMotion, selection.PhaseDrag:
		if m.open {
			return
		}
		// Bar titles only open on hover while some menu is already
		// open; submenu rows always open on hover.
		if m.inBar() && len(mgr.SelectedPath()) < 2 {
			return
		}
		mgr.SetSelectedPath(path)
	}
}

// HandleKey implements menu-level navigation and type-ahead filtering.
func (m *Menu) HandleKey(ev *selection.KeyEvent, path []selection.Element, mgr *selection.Manager) {
	leaf := isLeaf(mgr, m)
	switch key := ev.Msg.String(); key {
	case "down", "enter":
		if leaf {
			ev.Consume()
			m.selectEdge(mgr, path, +1)
		}
	case "up":
		if leaf {
			ev.Consume()
			m.selectEdge(mgr, path, -1)
		}
	case "esc":
		if leaf {
			ev.Consume()
			mgr.SetSelectedPath(path[:len(path)-1])
		}
	case "left":
		if m.inBar() && inPath(mgr, m) {
			ev.Consume()
			m.bar.selectNeighbor(mgr, m, -1)
		} else if leaf {
			ev.Consume()
			mgr.SetSelectedPath(path[:len(path)-1])
		}
	case "right":
		if m.inBar() && inPath(mgr, m) {
			ev.Consume()
			m.bar.selectNeighbor(mgr, m, +1)
		} else if leaf {
			ev.Consume()
			m.selectEdge(mgr, path, +1)
		}
	case "backspace":
		if m.filter != "" && m.ownsLeaf(mgr) {
			ev.Consume()
			runes := []rune(m.filter)
			m.filter = string(runes[:len(runes)-1])
			if m.filter == "" {
				events.Filter.Cleared(m.id)
			} else {
				events.Filter.Backspace(m.id, m.filter)
			}
			m.refilter(mgr, path)
		}
	default:
		if !m.ownsLeaf(mgr) {
			return
		}
		if ev.Msg.Type == tea.KeyRunes && len(ev.Msg.Runes) > 0 {
			ev.Consume()
			m.filter += string(ev.Msg.Runes)
			events.Filter.Append(m.id, m.filter)
			m.refilter(mgr, path)
		} else if key == " " {
			ev.Consume()
			m.filter += " "
			events.Filter.Append(m.id, m.filter)
			m.refilter(mgr, path)
		}
	}
}

// ownsLeaf reports whether the current highlight is this menu itself or
// one of its rows; only the innermost open menu accepts filter input.
func (m *Menu) ownsLeaf(mgr *selection.Manager) bool {
	current := mgr.SelectedPath()
	if len(current) == 0 {
		return false
	}
	leaf := current[len(current)-1]
	if leaf == selection.Element(m) {
		return true
	}
	for _, r := range m.rows {
		if r != nil && selection.Element(r) == leaf {
			return true
		}
	}
	return false
}

// selectEdge highlights the first (+1) or last (-1) selectable row. path
// must end with this menu.
func (m *Menu) selectEdge(mgr *selection.Manager, path []selection.Element, dir int) {
	rows := m.selectableRows()
	if len(rows) == 0 {
		return
	}
	target := rows[0]
	if dir < 0 {
		target = rows[len(rows)-1]
	}
	mgr.SetSelectedPath(appendPath(path, target))
}

// moveHighlight moves the highlight from the row at the end of path to its
// neighbor, wrapping at both ends.
func (m *Menu) moveHighlight(mgr *selection.Manager, path []selection.Element, delta int) {
	rows := m.selectableRows()
	if len(rows) == 0 || len(path) == 0 {
		return
	}
	current := path[len(path)-1]
	idx := -1
	for i, r := range rows {
		if selection.Element(r) == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		idx = 0
	} else {
		idx = (idx + delta + len(rows)) % len(rows)
	}
	mgr.SetSelectedPath(appendPath(path[:len(path)-1], rows[idx]))
}

// refilter re-lays the popup out for the current query and moves the
// highlight onto the best match, or back to the menu when nothing matches.
func (m *Menu) refilter(mgr *selection.Manager, path []selection.Element) {
	m.layoutPopup()
	base := path
	if len(base) > 0 && base[len(base)-1] != selection.Element(m) {
		// path may end at a row that just got filtered away
		base = base[:len(base)-1]
	}
	rows := m.selectableRows()
	if len(rows) == 0 {
		mgr.SetSelectedPath(clonePath(base))
		return
	}
	mgr.SetSelectedPath(appendPath(base, rows[bestMatchIndex(rows, m.filter)]))
}

// selectableRows returns the currently visible rows keyboard navigation
// may land on, in display order.
func (m *Menu) selectableRows() []row {
	out := make([]row, 0, len(m.laidOut))
	for _, r := range m.laidOut {
		if r != nil && r.selectable() {
			out = append(out, r)
		}
	}
	return out
}

// layoutPopup computes the popup frame and row bounds from the current
// filter. Row bounds are what pointer routing hit-tests against, so layout
// and rendering must agree exactly.
func (m *Menu) layoutPopup() {
	if m.bar == nil {
		return
	}
	m.laidOut = visibleRows(m.rows, m.filter)
	m.rowTexts = alignRowTexts(m.laidOut)

	width := ansi.StringWidth(m.title)
	if len(m.laidOut) == 0 && ansi.StringWidth(emptyPopupText) > width {
		width = ansi.StringWidth(emptyPopupText)
	}
	for _, text := range m.rowTexts {
		if w := ansi.StringWidth(text); w > width {
			width = w
		}
	}
	width += 2 // leading and trailing space

	var anchor geom.Point
	if m.inBar() {
		anchor = geom.Point{X: m.frame.rect.X, Y: m.frame.rect.Y + 1}
	} else {
		anchor = geom.Point{X: m.frame.rect.X + m.frame.rect.W, Y: m.frame.rect.Y}
	}
	height := len(m.laidOut)
	if height < 1 {
		height = 1
	}
	m.popup = geom.Rect{X: anchor.X, Y: anchor.Y, W: width, H: height}.Clamp(m.bar.screen)

	// Hide everything first; filtered-out rows keep no stale bounds.
	for _, r := range m.rows {
		if r != nil {
			r.setRowBounds(geom.Rect{}, false)
		}
	}
	y := m.popup.Y
	for _, r := range m.laidOut {
		if y >= m.popup.Y+m.popup.H {
			break
		}
		if r != nil {
			r.setRowBounds(geom.Rect{X: m.popup.X, Y: y, W: m.popup.W, H: 1}, true)
		}
		y++
	}
}

// rowStyle picks the style for the menu's own row inside its parent
// popup.
func (m *Menu) rowStyle(st *theme.Styles) *lipgloss.Style {
	if m.open {
		return st.SelectedItem
	}
	return st.Item
}

// emptyPopupText fills the popup when the filter matches nothing, so the
// frame does not collapse into a bare hole over the background.
const emptyPopupText = "(no matches)"

// PopupView renders the open popup as a block of styled lines matching
// PopupBounds.
func (m *Menu) PopupView(st *theme.Styles) string {
	if !m.open {
		return ""
	}
	if len(m.laidOut) == 0 {
		return st.Popup.Render(fitRow(emptyPopupText, m.popup.W))
	}
	lines := make([]string, 0, m.popup.H)
	for i, r := range m.laidOut {
		if i >= m.popup.H {
			break
		}
		if r == nil {
			lines = append(lines, st.Separator.Render(strings.Repeat("─", m.popup.W)))
			continue
		}
		lines = append(lines, r.rowStyle(st).Render(fitRow(m.rowTexts[i], m.popup.W)))
	}
	return strings.Join(lines, "\n")
}

// alignRowTexts lays the label and hint columns out across a popup so
// shortcuts and submenu arrows line up. Separator slots stay empty.
func alignRowTexts(rows []row) []string {
	out := make([]string, len(rows))
	cells := make([][]string, 0, len(rows))
	idx := make([]int, 0, len(rows))
	hinted := false
	for i, r := range rows {
		if r == nil {
			continue
		}
		if r.rowHint() != "" {
			hinted = true
		}
		cells = append(cells, []string{r.rowLabel(), r.rowHint()})
		idx = append(idx, i)
	}
	if len(cells) == 0 {
		return out
	}
	if !hinted {
		for j := range cells {
			cells[j] = cells[j][:1]
		}
	}
	formatted := table.Format(cells, []table.Alignment{table.AlignLeft, table.AlignRight})
	for j, text := range formatted {
		out[idx[j]] = text
	}
	return out
}

// fitRow truncates or pads an aligned row text into a popup of the given
// width, framed by one space on each side.
func fitRow(text string, width int) string {
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	text = truncate.StringWithTail(text, uint(inner), "…")
	if pad := inner - ansi.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return " " + text + " "
}

func clonePath(path []selection.Element) []selection.Element {
	out := make([]selection.Element, len(path))
	copy(out, path)
	return out
}

func appendPath(prefix []selection.Element, el selection.Element) []selection.Element {
	out := make([]selection.Element, len(prefix), len(prefix)+1)
	copy(out, prefix)
	return append(out, el)
}
