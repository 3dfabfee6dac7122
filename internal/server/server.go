// Package server exposes games over HTTP.
//
// The server keeps game sessions in memory, keyed by ksuid. A JSON API
// creates games and plays moves; an HTML page renders any position as a
// board. Sessions do not survive a restart.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"

	"barragoon/internal/game"
	"barragoon/internal/render"
)

// session is one in-memory game with its move history.
type session struct {
	id    string
	game  *game.Game
	moves []string
}

// Server holds the session table and request handlers.
//
// All session access goes through mu; the handlers run concurrently.
type Server struct {
	mu       sync.Mutex
	sessions map[string]*session

	logger    zerolog.Logger
	publicDir string
}

// New returns a Server with an empty session table. publicDir is served
// under /public/; pass an empty string to disable static files.
func New(logger zerolog.Logger, publicDir string) *Server {
	return &Server{
		sessions:  make(map[string]*session),
		logger:    logger,
		publicDir: publicDir,
	}
}

// Router returns the HTTP handler with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/", s.handleIndex)
	r.Get("/board", s.handleBoard)

	r.Post("/games", s.handleCreateGame)
	r.Get("/games/{id}", s.handleGetGame)
	r.Get("/games/{id}/moves", s.handleListMoves)
	r.Post("/games/{id}/moves", s.handlePlayMove)

	if s.publicDir != "" {
		fs := http.StripPrefix("/public/", http.FileServer(http.Dir(s.publicDir)))
		r.Get("/public/*", fs.ServeHTTP)
	}

	return r
}

// ListenAndServe serves the router on addr until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info().Str("addr", addr).Msg("Server listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// requestLogger logs one line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	})
}

// boardRenderer draws the plain-text board included in JSON responses.
var boardRenderer = render.New("ascii", false, true)

// gameState is the JSON representation of a session.
type gameState struct {
	ID    string   `json:"id"`
	FEN   string   `json:"fen"`
	Turn  string   `json:"turn"`
	Moves []string `json:"moves"`
	Board string   `json:"board"`
}

func stateOf(sess *session) gameState {
	moves := make([]string, len(sess.moves))
	copy(moves, sess.moves)
	return gameState{
		ID:    sess.id,
		FEN:   sess.game.FEN(),
		Turn:  sess.game.Turn().String(),
		Moves: moves,
		Board: boardRenderer.Render(sess.game),
	}
}

// createGameRequest is the optional POST /games body.
type createGameRequest struct {
	FEN string `json:"fen"`
}

// POST /games creates a session, at the start position by default or at
// the FEN given in the body.
func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	g := game.New()

	if r.Body != nil && r.ContentLength != 0 {
		var req createGameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if req.FEN != "" {
			parsed, err := game.FromFEN(req.FEN)
			if err != nil {
				http.Error(w, fmt.Sprintf("invalid fen: %v", err), http.StatusBadRequest)
				return
			}
			g = parsed
		}
	}

	sess := &session{
		id:   ksuid.New().String(),
		game: g,
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	state := stateOf(sess)
	s.mu.Unlock()

	s.logger.Info().Str("id", sess.id).Msg("Game created")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(state)
}

// GET /games/{id} returns the session state.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	sess, ok := s.sessions[id]
	var state gameState
	if ok {
		state = stateOf(sess)
	}
	s.mu.Unlock()

	if !ok {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// GET /games/{id}/moves returns the legal moves for the side to move.
func (s *Server) handleListMoves(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	sess, ok := s.sessions[id]
	var moves []game.Move
	if ok {
		moves = sess.game.ValidMoves()
	}
	s.mu.Unlock()

	if !ok {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"moves": names})
}

// playMoveRequest is the POST /games/{id}/moves body.
type playMoveRequest struct {
	Move string `json:"move"`
}

// POST /games/{id}/moves applies one move. Illegal moves get 422 and leave
// the session untouched.
func (s *Server) handlePlayMove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req playMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Move == "" {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	m, err := sess.game.MoveFromString(req.Move)
	if err != nil {
		http.Error(w, fmt.Sprintf("illegal move: %s", req.Move), http.StatusUnprocessableEntity)
		return
	}
	if err := sess.game.Apply(m); err != nil {
		http.Error(w, fmt.Sprintf("illegal move: %s", req.Move), http.StatusUnprocessableEntity)
		return
	}
	sess.moves = append(sess.moves, req.Move)

	s.logger.Info().Str("id", id).Str("move", req.Move).Msg("Move played")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stateOf(sess))
}
