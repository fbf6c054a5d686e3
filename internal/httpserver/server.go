// internal/httpserver/server.go
//
// HTTP server wiring for the hint backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Stateless hints: POST /hints computes results for a posted board.
//   - Board sessions (optional auth): mounted under /boards.
//   - Auth endpoints: /auth/* (JWT + cookie, bcrypt-hashed passwords).
//
// Notes:
//   - CORS is origin‑aware and credentials‑enabled (so cookies work).
//   - Top picks are seeded per board and UTC day, so refreshing the same
//     board shows the same highlights.
//   - At debug log level every recompute logs a sample of filter rejections.

package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/hint-server/internal/config"
	"github.com/robalobadob/wordle/apps/hint-server/internal/daily"
	"github.com/robalobadob/wordle/apps/hint-server/internal/hint"
	"github.com/robalobadob/wordle/apps/hint-server/internal/store"
	"github.com/robalobadob/wordle/apps/hint-server/internal/words"
)

// maxRows caps how many guesses a posted board may hold.
const maxRows = 6

var errTooManyRows = fmt.Errorf("board has more than %d rows", maxRows)

// Server bundles router, dictionary, board store and DB handle.
type Server struct {
	r     *chi.Mux
	cfg   config.Config
	dict  *words.Dictionary
	store store.Store
	db    *sql.DB
	now   func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg config.Config, dict *words.Dictionary, st store.Store, db *sql.DB) *Server {
	s := &Server{r: chi.NewRouter(), cfg: cfg, dict: dict, store: st, db: db, now: time.Now}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // zerolog access log
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFor(cfg.ClientOrigin))       // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "wordle-hints",
			"endpoints": []string{"/health", "POST /hints", "/boards/*", "/auth/*"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"words": s.dict.Len()})
	})

	// Stateless hints: no auth needed
	s.r.Post("/hints", s.handleHints)

	// Board sessions: OPTIONAL AUTH (guests get unowned boards)
	s.mountBoards(s.r.With(s.withOptionalAuth()))

	// Auth
	s.mountAuthRoutes()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFor enables credentialed CORS for a single origin.
func corsFor(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestLogger writes one debug line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Str("requestId", chimw.GetReqID(r.Context())).
			Msg("request")
	})
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes {"error": code}.
func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// ------------------------------ HINTS --------------------------------------

// hintsReq is the payload for POST /hints.
type hintsReq struct {
	Board     hint.Board `json:"board"`
	HideKnown bool       `json:"hideKnown"`
}

// hintsRes is what every hint endpoint returns.
type hintsRes struct {
	Candidates []string          `json:"candidates"` // first SuggestionLimit survivors
	Matched    int               `json:"matched"`
	Total      int               `json:"total"`
	Message    string            `json:"message"`
	Stats      []hint.LetterStat `json:"stats"`
	TopPicks   []hint.Ranked     `json:"topPicks"`
	Ranked     []hint.Ranked     `json:"ranked"` // first SuggestionLimit entries
}

// handleHints computes hints for a posted board without storing anything.
func (s *Server) handleHints(w http.ResponseWriter, r *http.Request) {
	var req hintsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if err := validateBoard(req.Board); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.computeHints(req.Board, req.HideKnown))
}

// validateBoard rejects boards larger than the grid.
func validateBoard(b hint.Board) error {
	if len(b) > maxRows {
		return errTooManyRows
	}
	return nil
}

// computeHints runs the hint pipeline for one board snapshot.
func (s *Server) computeHints(board hint.Board, hideKnown bool) hintsRes {
	key := boardKey(board)
	rng := rand.New(rand.NewSource(daily.Seed(s.now(), s.cfg.PickSalt, key)))

	var tr *hint.Trace
	if zerolog.GlobalLevel() <= zerolog.DebugLevel && s.cfg.TraceLimit > 0 {
		tr = &hint.Trace{Limit: s.cfg.TraceLimit}
	}

	res := hint.Analyze(board, s.dict.Words(), hint.Options{HideKnown: hideKnown, Rand: rng, Trace: tr})

	if tr != nil {
		samples := make([]string, 0, len(tr.Rejections))
		for _, rj := range tr.Rejections {
			samples = append(samples, rj.String())
		}
		log.Debug().Str("board", key).Int("rejected", tr.Rejected).Strs("samples", samples).Msg("filter trace")
	}

	return hintsRes{
		Candidates: limit(res.Candidates, s.cfg.SuggestionLimit),
		Matched:    res.Matched,
		Total:      res.Total,
		Message:    fmt.Sprintf("narrowing to %d of %d words", res.Matched, res.Total),
		Stats:      res.Stats,
		TopPicks:   res.TopPicks,
		Ranked:     limit(res.Ranked, s.cfg.SuggestionLimit),
	}
}

// boardKey renders a board in row notation, e.g. "crane/gyxxx,curio/g.gxx".
func boardKey(b hint.Board) string {
	rows := make([]string, len(b))
	for i, row := range b {
		rows[i] = row.String()
	}
	return strings.Join(rows, ",")
}

// limit truncates list to n entries; n <= 0 keeps everything.
func limit[T any](list []T, n int) []T {
	if n > 0 && len(list) > n {
		return list[:n]
	}
	return list
}

// isNotFound maps store misses to 404s.
func isNotFound(err error) bool { return errors.Is(err, store.ErrNotFound) }
