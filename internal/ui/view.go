package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"menucascade/internal/widget"
)

const footerHelp = "↑/↓ move  enter select  type to filter  esc back  ctrl+c quit"

// View implements tea.Model. The bar occupies the top row; open popups
// are spliced over the background in path order so the innermost popup
// wins overlaps. Status and footer share the bottom rows.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	rows := make([]string, m.height)
	rows[0] = m.bar.View(styles)
	blank := strings.Repeat(" ", m.width)
	for i := 1; i < m.height; i++ {
		rows[i] = blank
	}
	if m.height >= 3 {
		rows[m.height-2] = m.statusLine()
		rows[m.height-1] = m.footerLine()
	}
	for _, el := range m.mgr.SelectedPath() {
		menu, ok := el.(*widget.Menu)
		if !ok || !menu.Open() {
			continue
		}
		m.overlayPopup(rows, menu)
	}
	return strings.Join(rows, "\n")
}

func (m *Model) overlayPopup(rows []string, menu *widget.Menu) {
	bounds := menu.PopupBounds()
	if bounds.Empty() {
		return
	}
	lines := strings.Split(menu.PopupView(styles), "\n")
	for i, line := range lines {
		y := bounds.Y + i
		if y < 1 || y >= len(rows) {
			continue
		}
		rows[y] = spliceLine(rows[y], line, bounds.X, bounds.W)
	}
}

// spliceLine replaces w cells of base starting at column x with overlay,
// preserving the styled text on either side.
func spliceLine(base, overlay string, x, w int) string {
	left := ansi.Truncate(base, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ansi.TruncateLeft(base, x+w, "")
	if ow := ansi.StringWidth(overlay); ow > w {
		overlay = ansi.Truncate(overlay, w, "")
	} else if ow < w {
		overlay += strings.Repeat(" ", w-ow)
	}
	return left + overlay + right
}

func (m *Model) statusLine() string {
	status := m.currentStatus()
	if status == "" {
		return strings.Repeat(" ", m.width)
	}
	return padLine(styles.StatusMessage.Render(status), m.width)
}

func (m *Model) footerLine() string {
	segments := make([]string, 0, 3)
	if trail := strings.Join(m.trail, " → "); trail != "" {
		segments = append(segments, styles.Footer.Render(trail))
	}
	if prompt := m.filterPrompt(); prompt != "" {
		segments = append(segments, prompt)
	}
	if m.showFooter && len(segments) == 0 {
		segments = append(segments, styles.Footer.Render(footerHelp))
	}
	return padLine(strings.Join(segments, "  "), m.width)
}

func (m *Model) filterPrompt() string {
	menu := m.innermostOpenMenu()
	if menu == nil || menu.Filter() == "" {
		return ""
	}
	return styles.FilterPrompt.Render("filter: ") +
		styles.Filter.Render(menu.Filter()) +
		m.filterCursor.View()
}

func padLine(line string, width int) string {
	w := ansi.StringWidth(line)
	switch {
	case w > width:
		return ansi.Truncate(line, width, "…")
	case w < width:
		return line + strings.Repeat(" ", width-w)
	default:
		return line
	}
}
