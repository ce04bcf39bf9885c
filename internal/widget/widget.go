// Package widget provides the concrete menu elements (bar, menu, item)
// that plug into the selection manager.
package widget

import (
	"github.com/charmbracelet/lipgloss"

	"menucascade/internal/geom"
	"menucascade/internal/selection"
	"menucascade/internal/theme"
)

// frame is the on-screen face shared by all widgets. It satisfies
// selection.Component; layout code owns its fields.
type frame struct {
	rect    geom.Rect
	visible bool
}

func (f *frame) Showing() bool           { return f.visible }
func (f *frame) ScreenBounds() geom.Rect { return f.rect }

// row is a widget that can sit inside a menu popup: an Item or a nested
// Menu. Separators are nil rows.
type row interface {
	selection.Element

	rowLabel() string
	// rowHint is the right-aligned column: an item's shortcut, or the
	// submenu arrow.
	rowHint() string
	// selectable reports whether keyboard navigation may land on the row.
	selectable() bool
	setRowBounds(r geom.Rect, visible bool)
	rowStyle(st *theme.Styles) *lipgloss.Style
	attach(bar *Bar, parent *Menu)
}

// isLeaf reports whether el is the innermost element of the current path.
func isLeaf(mgr *selection.Manager, el selection.Element) bool {
	path := mgr.SelectedPath()
	return len(path) > 0 && path[len(path)-1] == el
}

// inPath reports whether el is anywhere on the current path.
func inPath(mgr *selection.Manager, el selection.Element) bool {
	for _, p := range mgr.SelectedPath() {
		if p == el {
			return true
		}
	}
	return false
}
