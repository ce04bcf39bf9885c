// Package selection owns the selected path in a cascading menu hierarchy
// and routes pointer and key events along it.
package selection

import "menucascade/internal/geom"

// Component is the on-screen face of a menu element: a visibility flag plus
// a bounding box in screen cells. The selection manager hit-tests against
// it but never draws it.
type Component interface {
	// Showing reports whether the component currently occupies screen
	// cells. Hidden components are skipped by every routing scan.
	Showing() bool

	// ScreenBounds returns the component's bounding box in absolute
	// screen coordinates.
	ScreenBounds() geom.Rect
}

// Element is a node in the menu hierarchy. The manager holds non-owning
// references to elements and never branches on their concrete type; a menu
// bar, a popup menu and a menu item all satisfy the same contract.
type Element interface {
	// SubElements returns the element's children in listing order. A nil
	// slice means no children. Individual nil entries are placeholders
	// (separators and the like) and are skipped by all scans.
	SubElements() []Element

	// Component returns the element's on-screen component.
	Component() Component

	// HandlePointer reacts to a pointer event routed to this element.
	// path is the selection path the router resolved for the event,
	// ending with this element; the reaction may pass it to
	// mgr.SetSelectedPath.
	HandlePointer(ev *PointerEvent, path []Element, mgr *Manager)

	// HandleKey reacts to a key event offered to this element. Consuming
	// the event stops further routing.
	HandleKey(ev *KeyEvent, path []Element, mgr *Manager)

	// SelectionChanged is invoked when the element enters (true) or
	// leaves (false) the selected path.
	SelectionChanged(selected bool)
}
