package wordle

// Score is the number of guesses used to solve a puzzle (1-6), or
// ScoreFailed for an unsolved X/6 result. The numeric sentinel for a
// failed game is 7 so that scores sort naturally (fewer is better);
// it never leaks outside this type's String/ParseScore boundary.
type Score int

const ScoreFailed Score = 7

// MaxGuesses is the guess limit of a single puzzle.
const MaxGuesses = 6

// Valid reports whether s is one of the seven permitted values.
func (s Score) Valid() bool {
	return (s >= 1 && s <= MaxGuesses) || s == ScoreFailed
}

// Failed reports whether s represents an unsolved puzzle.
func (s Score) Failed() bool {
	return s == ScoreFailed
}

// Attempts returns the number of attempts the score counts for in
// leaderboard totals. A failed game counts the full sentinel value.
func (s Score) Attempts() int {
	return int(s)
}

// String renders the score the way it appears in a shared result,
// e.g. "3/6" or "X/6".
func (s Score) String() string {
	if s == ScoreFailed {
		return "X/6"
	}
	if s >= 1 && s <= MaxGuesses {
		return string('0'+rune(s)) + "/6"
	}
	return "?/6"
}

// ParseScore converts a score token (the part before "/6") into a
// Score. "X" and "x" map to ScoreFailed. The returned Score may be
// outside the permitted set (e.g. from a "0/6" token); callers are
// expected to check Valid before trusting it.
func ParseScore(tok string) (Score, bool) {
	if tok == "X" || tok == "x" {
		return ScoreFailed, true
	}
	if len(tok) == 1 && tok[0] >= '0' && tok[0] <= '9' {
		return Score(tok[0] - '0'), true
	}
	return 0, false
}
