package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyboardSessionActivatesItem(t *testing.T) {
	f := newFixture(40, 12)

	f.harness.Send(key(tea.KeyF10))  // open File
	f.harness.Send(key(tea.KeyDown)) // highlight Open
	f.harness.Send(key(tea.KeyDown)) // highlight Save
	f.harness.Send(key(tea.KeyEnter))

	if got := f.model.currentStatus(); got != "saved" {
		t.Fatalf("expected status %q, got %q", "saved", got)
	}
	if len(f.mgr.SelectedPath()) != 0 {
		t.Fatalf("expected hierarchy dismissed after activation")
	}
}

func TestKeyboardSessionDescendsIntoSubmenu(t *testing.T) {
	f := newFixture(40, 12)

	f.harness.Send(key(tea.KeyF10))   // open File
	f.harness.Send(key(tea.KeyRight)) // move to Edit
	f.harness.Send(key(tea.KeyDown))  // highlight Recent, opening it
	f.harness.Send(key(tea.KeyRight)) // descend to First

	if !f.recent.Open() {
		t.Fatalf("expected submenu open")
	}
	if !f.first.Selected() {
		t.Fatalf("expected submenu item highlighted")
	}

	f.harness.Send(key(tea.KeyLeft)) // collapse back to the Recent row
	if f.first.Selected() {
		t.Fatalf("expected submenu item highlight dropped after left")
	}
	if !f.recent.Open() {
		t.Fatalf("expected Recent still open as the leaf")
	}
}

func TestFilterSessionNarrowsAndActivates(t *testing.T) {
	f := newFixture(40, 12)

	f.harness.Send(key(tea.KeyF10))
	f.harness.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("op")})

	if !f.open.Selected() {
		t.Fatalf("expected filter to highlight Open")
	}
	if strings.Contains(f.model.View(), "Save") {
		t.Fatalf("expected Save filtered out of the popup")
	}

	f.harness.Send(key(tea.KeyEnter))
	if got := f.model.currentStatus(); got != "opened" {
		t.Fatalf("expected status %q, got %q", "opened", got)
	}
}

func TestMixedMouseAndKeyboardSession(t *testing.T) {
	f := newFixture(40, 12)

	f.harness.Send(press(1, 0))      // open File with the mouse
	f.harness.Send(key(tea.KeyDown)) // keyboard takes over
	f.harness.Send(motion(1, 2))     // mouse hover moves the highlight to Save

	if !f.save.Selected() || f.open.Selected() {
		t.Fatalf("expected hover to move the highlight to Save")
	}

	f.harness.Send(key(tea.KeyEnter))
	if got := f.model.currentStatus(); got != "saved" {
		t.Fatalf("expected status %q, got %q", "saved", got)
	}
}
