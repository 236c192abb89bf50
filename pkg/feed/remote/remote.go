// Package remote pulls captured message blobs from a companion
// scraper service over HTTP. The service owns the browser automation;
// this side only fetches whatever it has already materialized.
package remote

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
	"github.com/wordleague/wordleague/pkg/feed"
	"github.com/wordleague/wordleague/pkg/league"
)

// Source fetches blobs from GET <base>/leagues/<id>/messages, which
// returns {"messages": [{"text": "..."}]}.
type Source struct {
	base   string
	client *retryablehttp.Client
}

func New(baseURL string) *Source {
	client := retryablehttp.NewClient()
	client.Logger = log.New(io.Discard, "", 0)
	client.RetryMax = 3
	return &Source{base: strings.TrimSuffix(baseURL, "/"), client: client}
}

func (s *Source) Name() string { return "remote" }

func (s *Source) Messages(ctx context.Context, l league.League) ([]feed.Blob, error) {
	url := fmt.Sprintf("%s/leagues/%d/messages", s.base, l.ID)
	req, err := retryablehttp.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)

	res, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scraper service returned status %d for %s", res.StatusCode, url)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("scraper service returned invalid JSON for %s", url)
	}

	var blobs []feed.Blob
	gjson.GetBytes(body, "messages").ForEach(func(_, v gjson.Result) bool {
		text := v.Get("text").Str
		if text != "" {
			blobs = append(blobs, feed.Blob{LeagueID: l.ID, Text: text})
		}
		return true
	})
	return blobs, nil
}
