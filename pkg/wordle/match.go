package wordle

import (
	"regexp"
	"strconv"
	"strings"
)

// Result is the structured output of matching one raw message blob.
type Result struct {
	PuzzleNumber int
	Score        Score
	// SenderToken is the raw sender fragment ("9 4 9 2 3 0 4 4 7 2",
	// "(949) 230-4472", ...) exactly as it appeared in the blob.
	// Empty when the blob carried no sender prefix.
	SenderToken string
}

var (
	// Announcement grammar: "Wordle 1,510 3/6" or "Wordle #1510 X/6".
	announcementRe = regexp.MustCompile(`Wordle\s+#?([\d,]+)\s+([0-9Xx])/6`)

	// Google Voice accessibility text prefixes messages with
	// "Message from <spread-out digits or formatted number>,".
	senderRe = regexp.MustCompile(`(?i)message from\s+([+()\d][\d\s().+-]*\d)`)

	// Chat reactions quote the original message, so a reaction blob
	// contains the original announcement verbatim. Checked on leading
	// tokens only.
	reactionRe = regexp.MustCompile(`(?i)^(loved|liked|disliked|laughed\s+at|emphasized|questioned|reacted\s+to)\b`)
)

// IsReaction reports whether the blob is a reaction to someone else's
// message rather than a submission of its own. The check runs on the
// leading tokens of the blob, and again after the "Message from ..."
// prefix when one is present.
func IsReaction(text string) bool {
	body := strings.TrimSpace(text)
	if reactionRe.MatchString(body) {
		return true
	}
	if loc := senderRe.FindStringIndex(body); loc != nil {
		rest := strings.TrimLeft(body[loc[1]:], " \t,.:")
		return reactionRe.MatchString(rest)
	}
	return false
}

// Match extracts the puzzle number, score and sender token from a raw
// message blob. It returns nil when the blob is a reaction or contains
// no recognizable announcement; absence of a match is an expected
// outcome, not an error. The returned score is not range-checked here
// (see Score.Valid), but the puzzle number is always positive.
func Match(text string) *Result {
	if IsReaction(text) {
		return nil
	}

	m := announcementRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil || n <= 0 {
		return nil
	}

	score, ok := ParseScore(m[2])
	if !ok {
		return nil
	}

	res := &Result{PuzzleNumber: n, Score: score}
	if sm := senderRe.FindStringSubmatch(text); sm != nil {
		res.SenderToken = strings.TrimSpace(sm[1])
	}
	return res
}
