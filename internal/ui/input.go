package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"menucascade/internal/geom"
	"menucascade/internal/selection"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "ctrl+c":
		return tea.Quit
	case "f10":
		// f10 toggles the bar, matching the classic menu activation key.
		if len(m.mgr.SelectedPath()) == 0 {
			m.openFirstMenu()
		} else {
			m.mgr.ClearSelectedPath()
		}
		m.noteFilterChange()
		return nil
	}

	if len(m.mgr.SelectedPath()) == 0 {
		if m.bar.ActivateShortcut(m.mgr, key.String()) {
			return m.drainBus()
		}
		switch key.String() {
		case "q":
			return tea.Quit
		case "enter", "down", "right":
			m.openFirstMenu()
		}
		return nil
	}

	ev := &selection.KeyEvent{Msg: key}
	m.mgr.ProcessKeyEvent(ev)
	if !ev.Consumed() && key.String() == "esc" {
		m.mgr.ClearSelectedPath()
	}
	m.noteFilterChange()
	return m.drainBus()
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown,
		tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return nil
	}

	phase, held := pointerPhase(ev)
	pos := geom.Point{X: ev.X, Y: ev.Y}

	if len(m.mgr.SelectedPath()) == 0 {
		// Routing needs an anchored selection. A press on a bar title
		// grabs the hierarchy; everything else is inert.
		if phase == selection.PhasePress {
			m.activateBarAt(pos)
		}
		return nil
	}

	pev := &selection.PointerEvent{Target: m.bar, Pos: pos, Phase: phase, ButtonHeld: held}
	m.mgr.ProcessPointerEvent(pev)
	if !pev.Consumed() && phase == selection.PhasePress {
		// Press outside every open surface dismisses the hierarchy.
		m.mgr.ClearSelectedPath()
	}
	m.noteFilterChange()
	return m.drainBus()
}

// pointerPhase maps a Bubble Tea mouse message onto a routing phase and
// the held-button flag.
func pointerPhase(ev tea.MouseMsg) (selection.Phase, bool) {
	switch ev.Action {
	case tea.MouseActionPress:
		return selection.PhasePress, true
	case tea.MouseActionRelease:
		return selection.PhaseRelease, false
	default:
		if ev.Button != tea.MouseButtonNone {
			return selection.PhaseDrag, true
		}
		return selection.PhaseMotion, false
	}
}

func (m *Model) activateBarAt(p geom.Point) {
	for _, menu := range m.bar.Menus() {
		mc := menu.Component()
		if mc.Showing() && mc.ScreenBounds().Contains(p) {
			m.mgr.SetSelectedPath([]selection.Element{m.bar, menu})
			return
		}
	}
}

func (m *Model) openFirstMenu() {
	menus := m.bar.Menus()
	if len(menus) == 0 {
		return
	}
	m.mgr.SetSelectedPath([]selection.Element{m.bar, menus[0]})
}
