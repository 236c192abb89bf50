package storage

import (
	"time"

	"github.com/wordleague/wordleague/pkg/wordle"
)

// ScoreRecord is one persisted result, unique per
// (league, player, puzzle).
type ScoreRecord struct {
	LeagueID     int64
	PlayerName   string
	PuzzleNumber int
	Score        wordle.Score
	EmojiGrid    string // glyph rows joined by \n; empty = no grid
	GridFlagged  bool   // accepted under the soft row-count policy
	PuzzleDate   time.Time
	RecordedAt   time.Time
}

// Outcome classifies what a reconcile did with one candidate.
type Outcome string

const (
	OutcomeNew       Outcome = "new"
	OutcomeUpdated   Outcome = "updated"
	OutcomeUnchanged Outcome = "unchanged"
	OutcomeRejected  Outcome = "rejected"
)

// Reason explains a rejection or skip. Everything except StoreError is
// an expected per-candidate condition.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonNoMatch          Reason = "no_match"
	ReasonReactionMessage  Reason = "reaction_message"
	ReasonStalePuzzle      Reason = "stale_puzzle"
	ReasonInvalidScore     Reason = "invalid_score"
	ReasonMissingPattern   Reason = "missing_pattern"
	ReasonUnresolvedPlayer Reason = "unresolved_player"
	ReasonStoreError       Reason = "store_error"
)
