package table

import "testing"

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"Save", "ctrl+s"},
		{"Open Recent", "▸"},
	}

	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0] != "Save         ctrl+s" {
		t.Fatalf("unexpected row %q", got[0])
	}
	if got[1] != "Open Recent       ▸" {
		t.Fatalf("unexpected row %q", got[1])
	}
}

func TestFormatSingleColumn(t *testing.T) {
	rows := [][]string{{"Undo"}, {"Redo"}}

	got := Format(rows, []Alignment{AlignLeft})
	if got[0] != "Undo" || got[1] != "Redo" {
		t.Fatalf("unexpected rows %v", got)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}
