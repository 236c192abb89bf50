package wordle

import "time"

// The anchor pair ties puzzle numbers to calendar dates. Puzzle #1 was
// published on June 19, 2021; every later puzzle is one day apart.
// Swapping the anchor changes nothing else.
const anchorPuzzle = 1

var anchorDate = time.Date(2021, time.June, 19, 0, 0, 0, 0, time.UTC)

// PuzzleDate returns the calendar date of puzzle n.
func PuzzleDate(n int) time.Time {
	return anchorDate.AddDate(0, 0, n-anchorPuzzle)
}

// PuzzleForDate returns the puzzle number published on t's calendar
// day. It is the inverse of PuzzleDate and is used to derive the
// current puzzle for an extraction run.
func PuzzleForDate(t time.Time) int {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return anchorPuzzle + int(day.Sub(anchorDate).Hours()/24)
}
