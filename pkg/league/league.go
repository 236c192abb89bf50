// Package league loads the per-run league registry: which leagues
// exist, how their conversation threads are identified, and where
// their rosters live.
package league

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// League describes one tracked group of players.
type League struct {
	ID     int64
	Name   string
	Slug   string // directory/file-safe identifier
	Roster string // path to the roster CSV
	Thread string // conversation hint for the scraping collaborator
}

// LoadConfig reads the leagues.json registry. Format:
//
//	{"leagues": [
//	  {"id": 1, "name": "Wordle Warriorz", "slug": "warriorz",
//	   "roster": "players/warriorz.csv", "thread": "Wordle Warriorz"}
//	]}
func LoadConfig(path string) ([]League, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes the registry from raw JSON bytes.
func ParseConfig(data []byte) ([]League, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("league config is not valid JSON")
	}

	var leagues []League
	var parseErr error
	gjson.GetBytes(data, "leagues").ForEach(func(_, v gjson.Result) bool {
		l := League{
			ID:     v.Get("id").Int(),
			Name:   v.Get("name").Str,
			Slug:   v.Get("slug").Str,
			Roster: v.Get("roster").Str,
			Thread: v.Get("thread").Str,
		}
		if l.ID <= 0 || l.Name == "" {
			parseErr = fmt.Errorf("league entry missing id or name: %s", v.Raw)
			return false
		}
		if l.Slug == "" {
			l.Slug = fmt.Sprintf("league-%d", l.ID)
		}
		leagues = append(leagues, l)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	if len(leagues) == 0 {
		return nil, fmt.Errorf("league config defines no leagues")
	}
	return leagues, nil
}
