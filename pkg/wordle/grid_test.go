package wordle

import "testing"

func TestExtractGridTrailingNoise(t *testing.T) {
	text := "Message from 9 4 9 2 3 0 4 4 7 2, Wordle 1,510 3/6\n\n⬜🟨⬜⬜⬜\n⬜🟨🟩🟨⬜\n🟩🟩🟩🟩🟩boom, Thursday..."

	g := ExtractGrid(text, 3)
	if g == nil {
		t.Fatal("expected a grid, got nil")
	}
	if g.RowCount() != 3 {
		t.Fatalf("row count: want 3, got %d (%q)", g.RowCount(), g.Rows)
	}
	if g.Rows[2] != "🟩🟩🟩🟩🟩" {
		t.Errorf("final row: want clean glyphs, got %q", g.Rows[2])
	}
	if g.RowsFlagged {
		t.Error("grid unexpectedly flagged")
	}
}

func TestExtractGridSeparatorsBetweenGlyphs(t *testing.T) {
	text := "Wordle 1510 2/6\n⬜ 🟨 ⬜ ⬜ ⬜\n🟩,🟩.🟩 🟩 🟩"

	g := ExtractGrid(text, 2)
	if g == nil {
		t.Fatal("expected a grid, got nil")
	}
	want := []string{"⬜🟨⬜⬜⬜", "🟩🟩🟩🟩🟩"}
	for i, w := range want {
		if g.Rows[i] != w {
			t.Errorf("row %d: want %q, got %q", i, w, g.Rows[i])
		}
	}
}

func TestExtractGridContiguous(t *testing.T) {
	// Lines after the first non-grid line must not be picked up.
	text := "Wordle 1510 2/6\n⬜🟨⬜⬜⬜\n🟩🟩🟩🟩🟩\nso close yesterday!\n⬛⬛⬛⬛⬛"

	g := ExtractGrid(text, 2)
	if g == nil {
		t.Fatal("expected a grid, got nil")
	}
	if g.RowCount() != 2 {
		t.Errorf("row count: want 2, got %d", g.RowCount())
	}
}

func TestExtractGridZeroRows(t *testing.T) {
	if g := ExtractGrid("Wordle 1510 5/6\nno pattern here", 5); g != nil {
		t.Errorf("expected nil grid, got %q", g.Rows)
	}
}

func TestExtractGridSoftMismatch(t *testing.T) {
	text := "Wordle 1510 4/6\n⬜🟨⬜⬜⬜\n🟩🟩🟩🟩🟩"

	g := ExtractGrid(text, 4)
	if g == nil {
		t.Fatal("expected a grid, got nil")
	}
	if !g.RowsFlagged {
		t.Error("mismatched row count should be flagged")
	}
	if g.RowCount() != 2 {
		t.Errorf("row count: want 2, got %d", g.RowCount())
	}
}

func TestExtractGridFailedScore(t *testing.T) {
	text := "Wordle 1510 X/6\n⬛⬛⬛⬛⬛\n⬛🟨⬛⬛⬛\n⬛🟨🟨⬛⬛\n🟨🟨⬛⬛⬛\n⬛🟩🟩🟩⬛\n⬜🟩🟩🟩🟨"

	g := ExtractGrid(text, ScoreFailed)
	if g == nil {
		t.Fatal("expected a grid, got nil")
	}
	if g.RowCount() != 6 {
		t.Errorf("row count: want 6, got %d", g.RowCount())
	}
	if g.RowsFlagged {
		t.Error("six failed rows should not be flagged")
	}

	// A failed score without any grid is simply absent, not an error.
	if g := ExtractGrid("Wordle 1510 X/6 ugh", ScoreFailed); g != nil {
		t.Errorf("expected nil grid, got %q", g.Rows)
	}
}

func TestExtractGridSkipsBlankLeadIn(t *testing.T) {
	text := "Wordle 1510 1/6\n\n\n🟩🟩🟩🟩🟩"
	g := ExtractGrid(text, 1)
	if g == nil || g.RowCount() != 1 {
		t.Fatalf("expected one row, got %v", g)
	}
}
