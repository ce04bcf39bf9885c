package selection

import (
	"testing"

	"menucascade/internal/geom"
)

func TestComponentForPointReturnsDeepestMatch(t *testing.T) {
	var journal []string
	mgr, bar, menuA, menuB, item1, _ := buildMenuFixture(&journal)

	// Overlap a bar-level child with item1; the deeper level wins.
	menuB.at(item1.comp.bounds)
	_ = menuA

	got := mgr.ComponentForPoint(bar, geom.Point{X: 2, Y: 1})
	if got != item1.comp {
		t.Fatalf("expected item1's component, got %v", got)
	}
	if len(journal) != 0 {
		t.Fatalf("query must be side-effect free, journal %v", journal)
	}
}

func TestComponentForPointMissReturnsNil(t *testing.T) {
	var journal []string
	mgr, bar, _, _, _, _ := buildMenuFixture(&journal)

	if got := mgr.ComponentForPoint(bar, geom.Point{X: 19, Y: 9}); got != nil {
		t.Fatalf("expected nil on miss, got %v", got)
	}
}

func TestComponentForPointSkipsHiddenChildren(t *testing.T) {
	var journal []string
	mgr, bar, _, _, item1, _ := buildMenuFixture(&journal)
	item1.comp.showing = false

	if got := mgr.ComponentForPoint(bar, geom.Point{X: 2, Y: 1}); got != nil {
		t.Fatalf("expected hidden child to be skipped, got %v", got)
	}
}

func TestIsComponentPartOfCurrentMenuSearchesFullSubtree(t *testing.T) {
	var journal []string
	mgr, _, menuA, menuB, _, item2 := buildMenuFixture(&journal)
	_ = menuA

	// item2 is in the subtree but not on the selected chain; menuB is a
	// sibling branch under the same root.
	if !mgr.IsComponentPartOfCurrentMenu(item2.comp) {
		t.Fatalf("expected item2 to be part of the current menu")
	}
	if !mgr.IsComponentPartOfCurrentMenu(menuB.comp) {
		t.Fatalf("expected sibling branch to be part of the current menu")
	}

	stranger := newFakeElement("stranger", &journal)
	if mgr.IsComponentPartOfCurrentMenu(stranger.comp) {
		t.Fatalf("expected foreign component to be rejected")
	}
}

func TestIsComponentPartOfCurrentMenuWithEmptySelection(t *testing.T) {
	var journal []string
	mgr := NewManager()
	el := newFakeElement("A", &journal)

	if mgr.IsComponentPartOfCurrentMenu(el.comp) {
		t.Fatalf("expected false with empty selection")
	}
}

func TestIsComponentPartOfCurrentMenuSkipsNilBranches(t *testing.T) {
	var journal []string
	mgr := NewManager()
	root := newFakeElement("root", &journal)
	leaf := newFakeElement("leaf", &journal)
	root.children = []Element{nil, leaf}
	mgr.SetSelectedPath([]Element{root})

	if !mgr.IsComponentPartOfCurrentMenu(leaf.comp) {
		t.Fatalf("expected leaf to be found past the nil branch")
	}
}
