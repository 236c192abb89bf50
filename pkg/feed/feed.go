// Package feed defines where raw message blobs come from. The
// browser-automation side of the system materializes conversation text
// somewhere (snapshot files on disk, a companion HTTP service); a
// Source turns that into blobs and the engine never knows the
// difference.
package feed

import (
	"context"

	"github.com/wordleague/wordleague/pkg/league"
)

// Blob is the raw text of one scraped message, tagged with the league
// it was scraped under. Consumed once and discarded.
type Blob struct {
	LeagueID int64
	Text     string
}

// Source yields the blobs captured for one league.
type Source interface {
	Name() string
	Messages(ctx context.Context, l league.League) ([]Blob, error)
}
