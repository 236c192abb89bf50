// Package extract runs the score extraction pipeline: raw message
// blobs in, reconciled score records out. One bad blob never stops the
// others; only a store that cannot open transactions aborts a run.
package extract

import (
	"context"
	"errors"
	"fmt"

	"github.com/wordleague/wordleague/pkg/feed"
	"github.com/wordleague/wordleague/pkg/roster"
	"github.com/wordleague/wordleague/pkg/storage"
	"github.com/wordleague/wordleague/pkg/wordle"
)

// Logger abstracts logging so callers can use logrus, stdlib log, or
// any other logger that satisfies this interface.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// nopLogger silently discards all messages.
type nopLogger struct{}

func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Debugf(string, ...interface{}) {}

// Config holds everything a run needs for one league.
type Config struct {
	DB        *storage.DB
	Directory *roster.Directory

	// CurrentPuzzle is the only puzzle number admitted this run.
	// Anything else is rejected as stale; backfilled history never
	// enters the store through this engine.
	CurrentPuzzle int

	Log Logger // optional; nil = no logging

	// OnResult is called per blob with its terminal outcome. Enables
	// the CLI to stream-print decisions as they happen. Nil = no
	// callback.
	OnResult func(blob feed.Blob, outcome storage.Outcome, reason storage.Reason)
}

// Result records the terminal state of one candidate.
type Result struct {
	Blob    feed.Blob
	Player  string
	Puzzle  int
	Score   wordle.Score
	Outcome storage.Outcome
	Reason  storage.Reason

	storeUnavailable bool
}

// Report aggregates a run over one league.
type Report struct {
	Processed int
	New       int
	Updated   int
	Unchanged int
	Skipped   int // no match or reaction; never reached reconciliation
	Rejected  []Result
}

// Engine reconciles blobs for one league. A new Engine is built per
// league per run; it holds no state beyond its config.
type Engine struct {
	cfg Config
	log Logger
}

func New(cfg Config) (*Engine, error) {
	if cfg.DB == nil {
		return nil, errors.New("extract: Config.DB is required")
	}
	if cfg.Directory == nil {
		return nil, errors.New("extract: Config.Directory is required")
	}
	if cfg.CurrentPuzzle <= 0 {
		return nil, fmt.Errorf("extract: invalid current puzzle %d", cfg.CurrentPuzzle)
	}
	log := cfg.Log
	if log == nil {
		log = nopLogger{}
	}
	return &Engine{cfg: cfg, log: log}, nil
}

// Run processes blobs in order. Candidates for an already-settled
// (player, puzzle) tuple are absorbed as unchanged, so feeding the
// same transcript twice is harmless. The returned error is non-nil
// only when the store became unavailable and the remainder of the run
// could not be trusted.
func (e *Engine) Run(ctx context.Context, blobs []feed.Blob) (*Report, error) {
	report := &Report{}

	for _, blob := range blobs {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Processed++

		res := e.processBlob(ctx, blob)
		switch res.Outcome {
		case storage.OutcomeNew:
			report.New++
		case storage.OutcomeUpdated:
			report.Updated++
		case storage.OutcomeUnchanged:
			report.Unchanged++
		case storage.OutcomeRejected:
			if res.Reason == storage.ReasonNoMatch || res.Reason == storage.ReasonReactionMessage {
				report.Skipped++
			} else {
				report.Rejected = append(report.Rejected, res)
			}
		}

		if e.cfg.OnResult != nil {
			e.cfg.OnResult(blob, res.Outcome, res.Reason)
		}

		if res.Reason == storage.ReasonStoreError {
			// A failed candidate transaction is local, but a store
			// that cannot begin transactions ends the run.
			if res.storeUnavailable {
				return report, fmt.Errorf("aborting run: %w", storage.ErrStoreUnavailable)
			}
		}
	}
	return report, nil
}

// processBlob walks one blob through the pipeline to a terminal state.
func (e *Engine) processBlob(ctx context.Context, blob feed.Blob) (res Result) {
	res = Result{Blob: blob, Outcome: storage.OutcomeRejected}

	if wordle.IsReaction(blob.Text) {
		res.Reason = storage.ReasonReactionMessage
		e.log.Debugf("skipping reaction message: %.60q", blob.Text)
		return res
	}

	match := wordle.Match(blob.Text)
	if match == nil {
		res.Reason = storage.ReasonNoMatch
		return res
	}
	res.Puzzle = match.PuzzleNumber
	res.Score = match.Score

	// Admission filter: strict current-puzzle policy.
	if match.PuzzleNumber != e.cfg.CurrentPuzzle {
		res.Reason = storage.ReasonStalePuzzle
		e.log.Infof("rejecting stale puzzle %d (current is %d)", match.PuzzleNumber, e.cfg.CurrentPuzzle)
		return res
	}

	if !match.Score.Valid() {
		res.Reason = storage.ReasonInvalidScore
		e.log.Warnf("rejecting invalid score token in: %.60q", blob.Text)
		return res
	}

	grid := wordle.ExtractGrid(blob.Text, match.Score)
	if grid == nil && !match.Score.Failed() {
		// A numeric score with no proof of play is not trusted.
		res.Reason = storage.ReasonMissingPattern
		e.log.Warnf("rejecting score %v without emoji grid", match.Score)
		return res
	}

	player, ok := e.cfg.Directory.Resolve(match.SenderToken)
	if !ok {
		res.Reason = storage.ReasonUnresolvedPlayer
		// The one category an operator should act on: it usually
		// means the roster is stale.
		e.log.Errorf("no player for sender %q (digits %q) in league %d; roster may be stale",
			match.SenderToken, roster.Digits(match.SenderToken), blob.LeagueID)
		return res
	}
	res.Player = player

	rec := storage.ScoreRecord{
		LeagueID:     blob.LeagueID,
		PlayerName:   player,
		PuzzleNumber: match.PuzzleNumber,
		Score:        match.Score,
		EmojiGrid:    grid.String(),
		GridFlagged:  grid.RowCount() > 0 && grid.RowsFlagged,
		PuzzleDate:   wordle.PuzzleDate(match.PuzzleNumber),
	}

	outcome, err := e.cfg.DB.UpsertScore(ctx, rec)
	if err != nil {
		res.Reason = storage.ReasonStoreError
		res.storeUnavailable = errors.Is(err, storage.ErrStoreUnavailable)
		e.log.Errorf("store error for %s puzzle %d: %v", player, match.PuzzleNumber, err)
		return res
	}

	res.Outcome = outcome
	res.Reason = storage.ReasonNone
	e.log.Infof("%s: %s puzzle %d %v", outcome, player, match.PuzzleNumber, match.Score)
	return res
}
