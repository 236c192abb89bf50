package server

import (
	"log"
	"net/http"

	"github.com/wordleague/wordleague/pkg/storage"
)

// Server exposes the score store as a small JSON API and serves the
// exported static site alongside it.
type Server struct {
	DB       *storage.DB
	SiteDir  string
	Username string
	Password string
}

func New(db *storage.DB, siteDir, user, pass string) *Server {
	return &Server{
		DB:       db,
		SiteDir:  siteDir,
		Username: user,
		Password: pass,
	}
}

func (s *Server) Start(addr string) error {
	mux := http.NewServeMux()

	// API Group
	mux.HandleFunc("GET /api/stats", s.basicAuth(s.handleStats))
	mux.HandleFunc("GET /api/leaderboard", s.basicAuth(s.handleLeaderboard))
	mux.HandleFunc("GET /api/weekly", s.basicAuth(s.handleWeekly))
	mux.HandleFunc("GET /api/scores", s.basicAuth(s.handleScores))

	// Static site (optional)
	if s.SiteDir != "" {
		fileServer := http.FileServer(http.Dir(s.SiteDir))
		mux.Handle("/", s.basicAuthMiddlewareForStatic(fileServer))
	}

	log.Printf("Starting server on %s", addr)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) basicAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Username == "" && s.Password == "" {
			next(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != s.Username || pass != s.Password {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (s *Server) basicAuthMiddlewareForStatic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Username == "" && s.Password == "" {
			next.ServeHTTP(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != s.Username || pass != s.Password {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
