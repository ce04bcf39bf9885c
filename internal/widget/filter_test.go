package widget

import "testing"

func labelRows(labels ...string) []row {
	rows := make([]row, len(labels))
	for i, l := range labels {
		if l == "" {
			continue // separator slot
		}
		rows[i] = NewItem(l, l, nil)
	}
	return rows
}

func rowLabels(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		if r != nil {
			out[i] = r.rowLabel()
		}
	}
	return out
}

func TestVisibleRowsEmptyQueryKeepsEverything(t *testing.T) {
	rows := labelRows("Open", "", "Quit")

	got := visibleRows(rows, "")
	if len(got) != 3 || got[1] != nil {
		t.Fatalf("expected all rows including the separator, got %v", rowLabels(got))
	}
}

func TestVisibleRowsFuzzyMatch(t *testing.T) {
	rows := labelRows("Open Recent", "Save As", "Quit")

	got := rowLabels(visibleRows(rows, "opr"))
	if len(got) != 1 || got[0] != "Open Recent" {
		t.Fatalf("expected fuzzy match on Open Recent, got %v", got)
	}
}

func TestVisibleRowsCaseFolds(t *testing.T) {
	rows := labelRows("Open", "Save", "Quit")

	got := rowLabels(visibleRows(rows, "SAVE"))
	if len(got) != 1 || got[0] != "Save" {
		t.Fatalf("expected case-insensitive match, got %v", got)
	}
}

func TestVisibleRowsDropsSeparatorsWhileFiltering(t *testing.T) {
	rows := labelRows("Open", "", "Quit")

	got := visibleRows(rows, "q")
	if len(got) != 1 || got[0].rowLabel() != "Quit" {
		t.Fatalf("expected separator dropped, got %v", rowLabels(got))
	}
}

func TestVisibleRowsNoMatchReturnsEmpty(t *testing.T) {
	rows := labelRows("Open", "Save")

	if got := visibleRows(rows, "zzz"); len(got) != 0 {
		t.Fatalf("expected no rows, got %v", rowLabels(got))
	}
}

func TestBestMatchIndexPrefersExactThenPrefix(t *testing.T) {
	rows := labelRows("Save As", "Save", "Saved Games")

	if got := bestMatchIndex(rows, "save"); got != 1 {
		t.Fatalf("expected exact match at 1, got %d", got)
	}
	if got := bestMatchIndex(rows, "saved"); got != 2 {
		t.Fatalf("expected prefix match at 2, got %d", got)
	}
	if got := bestMatchIndex(rows, "av"); got != 0 {
		t.Fatalf("expected fallback to 0, got %d", got)
	}
}
