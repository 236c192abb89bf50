// Package gvoice reads conversation DOM snapshots saved by the
// Google Voice automation layer. Each snapshot is an HTML dump of one
// conversation thread; the accessibility tree duplicates every message
// as a hidden element whose text carries the sender and full body in
// one place, which is far more reliable than the visible DOM.
package gvoice

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/wordleague/wordleague/pkg/feed"
	"github.com/wordleague/wordleague/pkg/league"
)

const hiddenSelector = ".cdk-visually-hidden"

// Source yields blobs from snapshot files under dir/<league slug>/.
type Source struct {
	dir string
}

func New(dir string) *Source {
	return &Source{dir: dir}
}

func (s *Source) Name() string { return "gvoice" }

// Messages parses every .html snapshot in the league's directory and
// returns one blob per hidden message element that looks like a Wordle
// share. Pre-filtering on "Wordle" and "/6" only trims the obvious
// noise (timestamps, read receipts); real validation belongs to the
// matcher.
func (s *Source) Messages(ctx context.Context, l league.League) ([]feed.Blob, error) {
	dir := filepath.Join(s.dir, l.Slug)
	paths, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no snapshots for league %q under %s", l.Name, dir)
	}

	var blobs []feed.Blob
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fileBlobs, err := s.parseSnapshot(path, l.ID)
		if err != nil {
			return nil, fmt.Errorf("parsing snapshot %s: %w", path, err)
		}
		blobs = append(blobs, fileBlobs...)
	}
	return blobs, nil
}

func (s *Source) parseSnapshot(path string, leagueID int64) ([]feed.Blob, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, err
	}

	var blobs []feed.Blob
	doc.Find(hiddenSelector).Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		if !strings.Contains(text, "Wordle") || !strings.Contains(text, "/6") {
			return
		}
		blobs = append(blobs, feed.Blob{LeagueID: leagueID, Text: text})
	})
	return blobs, nil
}
