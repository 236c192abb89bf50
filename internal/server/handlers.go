package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/wordleague/wordleague/pkg/wordle"
)

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.DB.GetStats(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(stats)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	leagueID, ok := queryInt64(w, r, "league")
	if !ok {
		return
	}
	puzzle := wordle.PuzzleForDate(time.Now())
	if p := r.URL.Query().Get("puzzle"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			http.Error(w, "invalid puzzle number", http.StatusBadRequest)
			return
		}
		puzzle = n
	}

	records, err := s.DB.ScoresForPuzzle(r.Context(), leagueID, puzzle)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(records)
}

func (s *Server) handleWeekly(w http.ResponseWriter, r *http.Request) {
	leagueID, ok := queryInt64(w, r, "league")
	if !ok {
		return
	}
	start := time.Now().UTC()
	if d := r.URL.Query().Get("start"); d != "" {
		t, err := time.Parse("2006-01-02", d)
		if err != nil {
			http.Error(w, "invalid start date, want YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		start = t
	}

	totals, err := s.DB.WeeklyTotals(r.Context(), leagueID, start)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(totals)
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	leagueID, ok := queryInt64(w, r, "league")
	if !ok {
		return
	}
	since := time.Now().UTC().AddDate(0, 0, -30)
	if d := r.URL.Query().Get("since"); d != "" {
		t, err := time.Parse("2006-01-02", d)
		if err != nil {
			http.Error(w, "invalid since date, want YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		since = t
	}

	records, err := s.DB.ScoresSince(r.Context(), leagueID, since)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(records)
}

func queryInt64(w http.ResponseWriter, r *http.Request, key string) (int64, bool) {
	v := r.URL.Query().Get(key)
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		http.Error(w, "missing or invalid "+key+" parameter", http.StatusBadRequest)
		return 0, false
	}
	return n, true
}
