package widget

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"menucascade/internal/geom"
	"menucascade/internal/selection"
)

func TestSetSizeLaysTitleCellsLeftToRight(t *testing.T) {
	bar, _, file, edit, _, _, _, _, _ := buildBar()

	fileCell := file.Component().ScreenBounds()
	editCell := edit.Component().ScreenBounds()
	if fileCell != (geom.Rect{X: 0, Y: 0, W: 6, H: 1}) {
		t.Fatalf("unexpected File cell %+v", fileCell)
	}
	if editCell != (geom.Rect{X: 6, Y: 0, W: 6, H: 1}) {
		t.Fatalf("unexpected Edit cell %+v", editCell)
	}
	if !bar.Component().Showing() {
		t.Fatalf("expected bar showing after SetSize")
	}
}

func TestSetSizeZeroHidesBar(t *testing.T) {
	bar, _, file, _, _, _, _, _, _ := buildBar()
	bar.SetSize(0, 0)

	if bar.Component().Showing() {
		t.Fatalf("expected bar hidden at zero size")
	}
	if file.Component().Showing() {
		t.Fatalf("expected title cells hidden with the bar")
	}
}

func TestResizeRelayoutsOpenPopup(t *testing.T) {
	bar, _, file, _, _, _, _, _, _ := buildBar()
	mgr := selection.NewManager()
	mgr.SetSelectedPath(elems(bar, file))
	before := file.PopupBounds()

	// Shrink the screen so the popup no longer fits at its old height.
	bar.SetSize(60, 3)
	after := file.PopupBounds()

	if after == before {
		t.Fatalf("expected popup re-laid out on resize")
	}
	if after.Y+after.H > 3 {
		t.Fatalf("expected popup clamped to screen, got %+v", after)
	}
}

func TestPopupClampedToScreenEdge(t *testing.T) {
	bar, _, _, edit, recent, _, _, _, _ := buildBar()
	bar.SetSize(18, 20)
	mgr := selection.NewManager()
	mgr.SetSelectedPath(elems(bar, edit, recent))

	popup := recent.PopupBounds()
	if popup.X+popup.W > 18 {
		t.Fatalf("expected submenu popup shifted inside the screen, got %+v", popup)
	}
}

func TestActivateShortcutRunsNestedBinding(t *testing.T) {
	bar, bus, _, _, _, _, _, _, first := buildBar()
	first.WithShortcut("ctrl+r")
	mgr := selection.NewManager()

	if !bar.ActivateShortcut(mgr, "ctrl+r") {
		t.Fatalf("expected binding to fire")
	}
	if got := bus.Drain(); len(got) != 1 {
		t.Fatalf("expected one queued command, got %d", len(got))
	}
}

func TestActivateShortcutSkipsDisabledItems(t *testing.T) {
	bar, bus, _, _, _, _, save, _, _ := buildBar()
	save.WithShortcut("ctrl+s")
	save.SetEnabled(false)
	mgr := selection.NewManager()

	if bar.ActivateShortcut(mgr, "ctrl+s") {
		t.Fatalf("expected disabled binding ignored")
	}
	if got := bus.Drain(); len(got) != 0 {
		t.Fatalf("expected no queued commands, got %d", len(got))
	}
}

func TestActivateShortcutUnknownKey(t *testing.T) {
	bar, _, _, _, _, _, _, _, _ := buildBar()
	mgr := selection.NewManager()

	if bar.ActivateShortcut(mgr, "ctrl+x") {
		t.Fatalf("expected no binding for unknown key")
	}
}

func TestBarViewWidthMatchesScreen(t *testing.T) {
	bar, _, file, _, _, _, _, _, _ := buildBar()
	mgr := selection.NewManager()
	mgr.SetSelectedPath(elems(bar, file))

	view := bar.View(testStyles())
	if got := ansi.StringWidth(view); got != bar.Screen().W {
		t.Fatalf("expected bar row of width %d, got %d", bar.Screen().W, got)
	}
	if !strings.Contains(view, "File") || !strings.Contains(view, "Edit") {
		t.Fatalf("expected titles in bar view: %q", view)
	}
}
