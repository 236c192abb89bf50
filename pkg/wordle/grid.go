package wordle

import "strings"

// Grid is the per-guess emoji feedback pattern of one played puzzle.
// Rows hold the glyphs only, with separators stripped.
type Grid struct {
	Rows []string
	// RowsFlagged marks a grid whose row count disagrees with the
	// score. Such grids are accepted (formatting varies across share
	// conventions) but the record is distinguishable downstream.
	RowsFlagged bool
}

func (g *Grid) String() string {
	if g == nil {
		return ""
	}
	return strings.Join(g.Rows, "\n")
}

// RowCount returns the number of rows, treating a nil grid as empty.
func (g *Grid) RowCount() int {
	if g == nil {
		return 0
	}
	return len(g.Rows)
}

// The four permitted glyphs: correct, present, and the dark/light
// variants clients use for an absent letter.
func isGridGlyph(r rune) bool {
	switch r {
	case '🟩', '🟨', '⬛', '⬜':
		return true
	}
	return false
}

func isRowSeparator(r rune) bool {
	return r == ' ' || r == ',' || r == '.'
}

// rowPrefix returns the glyphs of the longest glyph-and-separator
// prefix of line. Separators only count when they sit between two
// glyphs; anything else ends the row, and the remainder (a date, a
// "boom", whatever got glued on without a space) is discarded.
func rowPrefix(line string) string {
	var b strings.Builder
	for _, r := range line {
		switch {
		case isGridGlyph(r):
			b.WriteRune(r)
		case isRowSeparator(r) && b.Len() > 0:
			// Kept only if another glyph follows; the builder
			// holds glyphs alone, so a trailing separator before
			// noise costs nothing.
		default:
			return b.String()
		}
	}
	return b.String()
}

// ExtractGrid isolates the emoji grid that follows the announcement
// line in a raw message blob. Scanning begins on the line after the
// matched announcement, skips leading non-grid lines, and stops at the
// first non-grid line after the grid has started (the grid is
// contiguous).
//
// Row count is validated against the score: a non-failed score with
// zero rows yields nil (grid absent); a nonzero mismatch is accepted
// with RowsFlagged set. A failed score keeps at most MaxGuesses rows.
func ExtractGrid(text string, score Score) *Grid {
	lines := strings.Split(text, "\n")

	start := 0
	for i, line := range lines {
		if announcementRe.MatchString(line) {
			start = i + 1
			break
		}
	}

	var rows []string
	for _, line := range lines[start:] {
		row := rowPrefix(strings.TrimSpace(line))
		if row == "" {
			if len(rows) > 0 {
				break
			}
			continue
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil
	}

	g := &Grid{Rows: rows}
	if score.Failed() {
		if len(g.Rows) > MaxGuesses {
			g.Rows = g.Rows[:MaxGuesses]
			g.RowsFlagged = true
		}
		return g
	}
	if score.Valid() && len(g.Rows) != score.Attempts() {
		g.RowsFlagged = true
	}
	return g
}
