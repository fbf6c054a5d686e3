// internal/httpserver/routes_boards.go
//
// HTTP routes for saved board sessions.
// Exposes under /boards:
//   - POST   /boards            → create an empty board (owned if logged in)
//   - GET    /boards/mine       → the caller's boards (requires auth)
//   - GET    /boards/{id}       → fetch a board
//   - PUT    /boards/{id}       → replace the board snapshot
//   - DELETE /boards/{id}/rows  → clear every row
//   - DELETE /boards/{id}       → delete the board
//   - GET    /boards/{id}/hints → hints for the stored board (?hideKnown=true)
//
// The grid client owns editing; each PUT hands the server a full snapshot.
// Boards created by a logged-in user are visible only to that user.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/hint-server/internal/hint"
	"github.com/robalobadob/wordle/apps/hint-server/internal/store"
)

// mineLimit caps GET /boards/mine.
const mineLimit = 50

// mountBoards registers all /boards routes.
func (s *Server) mountBoards(r chi.Router) {
	r.Route("/boards", func(r chi.Router) {
		r.Post("/", s.handleNewBoard)
		r.With(s.requireAuth()).Get("/mine", s.handleMyBoards)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetBoard)
			r.Put("/", s.handlePutBoard)
			r.Delete("/", s.handleDeleteBoard)
			r.Delete("/rows", s.handleClearBoard)
			r.Get("/hints", s.handleBoardHints)
		})
	})
}

// newBoardRes is returned by POST /boards.
type newBoardRes struct {
	ID string `json:"id"`
}

// handleNewBoard creates an empty board session.
func (s *Server) handleNewBoard(w http.ResponseWriter, r *http.Request) {
	owner := ""
	if me := userFrom(r); me != nil {
		owner = me.ID
	}
	sess := store.NewSession(owner)
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save board")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	writeJSON(w, http.StatusCreated, newBoardRes{ID: sess.ID})
}

// handleMyBoards lists the caller's boards, newest first.
func (s *Server) handleMyBoards(w http.ResponseWriter, r *http.Request) {
	me := userFrom(r)
	list, err := s.store.ListByUser(r.Context(), me.ID, mineLimit)
	if err != nil {
		log.Error().Err(err).Str("user", me.ID).Msg("list boards")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// loadBoard fetches the {id} session and enforces ownership.
// It writes the error response itself and returns nil on failure.
func (s *Server) loadBoard(w http.ResponseWriter, r *http.Request) *store.Session {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found")
			return nil
		}
		log.Error().Err(err).Msg("load board")
		writeError(w, http.StatusInternalServerError, "db_error")
		return nil
	}
	if sess.UserID != "" {
		if me := userFrom(r); me == nil || me.ID != sess.UserID {
			writeError(w, http.StatusNotFound, "not_found")
			return nil
		}
	}
	return sess
}

func (s *Server) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	if sess := s.loadBoard(w, r); sess != nil {
		writeJSON(w, http.StatusOK, sess)
	}
}

// putBoardReq is the payload for PUT /boards/{id}.
type putBoardReq struct {
	Board hint.Board `json:"board"`
}

// handlePutBoard replaces the stored snapshot.
func (s *Server) handlePutBoard(w http.ResponseWriter, r *http.Request) {
	sess := s.loadBoard(w, r)
	if sess == nil {
		return
	}
	var req putBoardReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if err := validateBoard(req.Board); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Board == nil {
		req.Board = hint.Board{}
	}
	sess.Board = req.Board
	s.saveBoard(w, r, sess)
}

// handleClearBoard empties the board but keeps the session.
func (s *Server) handleClearBoard(w http.ResponseWriter, r *http.Request) {
	sess := s.loadBoard(w, r)
	if sess == nil {
		return
	}
	sess.Board = hint.Board{}
	s.saveBoard(w, r, sess)
}

func (s *Server) saveBoard(w http.ResponseWriter, r *http.Request, sess *store.Session) {
	sess.UpdatedAt = s.now().UTC()
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Str("board", sess.ID).Msg("save board")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleDeleteBoard(w http.ResponseWriter, r *http.Request) {
	sess := s.loadBoard(w, r)
	if sess == nil {
		return
	}
	if err := s.store.Delete(r.Context(), sess.ID); err != nil && !isNotFound(err) {
		log.Error().Err(err).Str("board", sess.ID).Msg("delete board")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// handleBoardHints computes hints for the stored board.
func (s *Server) handleBoardHints(w http.ResponseWriter, r *http.Request) {
	sess := s.loadBoard(w, r)
	if sess == nil {
		return
	}
	hideKnown, _ := strconv.ParseBool(r.URL.Query().Get("hideKnown"))
	writeJSON(w, http.StatusOK, s.computeHints(sess.Board, hideKnown))
}
