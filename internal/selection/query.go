package selection

import "menucascade/internal/geom"

// ComponentForPoint returns the component of the deepest child along the
// selected path whose bounds contain pt, where pt is local to source's
// component. It performs the same innermost-first scan as pointer routing
// but delivers nothing. Returns nil when no child matches.
func (m *Manager) ComponentForPoint(source Element, pt geom.Point) Component {
	if source == nil {
		return nil
	}
	sc := source.Component()
	if sc == nil {
		return nil
	}
	screen := sc.ScreenBounds().ToScreen(pt)

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
			if mc.ScreenBounds().Contains(screen) {
				return mc
			}
		}
	}
	return nil
}

// IsComponentPartOfCurrentMenu reports whether c belongs to any element in
// the open hierarchy, searching the outermost selected element's entire
// subtree rather than just the selected chain.
func (m *Manager) IsComponentPartOfCurrentMenu(c Component) bool {
	if len(m.path) == 0 {
		return false
	}
	return subtreeHasComponent(m.path[0], c)
}

func subtreeHasComponent(root Element, c Component) bool {
	if root == nil {
		return false
	}
	if root.Component() == c {
		return true
	}
	for _, child := range root.SubElements() {
		if subtreeHasComponent(child, c) {
			return true
		}
	}
	return false
}
