package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/logging"
	"github.com/EstherBlacksmith/blackjack.V.02/internal/types"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/services/game"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/services/player"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/services/statistics"
)

const historyLimit = statistics.RecentGamesLimit

// Server exposes players, games and statistics as JSON over HTTP
type Server struct {
	games   game.GameService
	players player.PlayerService
	stats   statistics.StatisticsService
	mux     *http.ServeMux
	logger  *logging.Logger
}

type nameRequest struct {
	Name string `json:"name"`
}

type newGameRequest struct {
	PlayerID string `json:"playerId"`
}

// NewServer creates a new API server and registers its routes
func NewServer(games game.GameService, players player.PlayerService, stats statistics.StatisticsService) *Server {
	s := &Server{
		games:   games,
		players: players,
		stats:   stats,
		mux:     http.NewServeMux(),
		logger:  logging.Default.With("api"),
	}
	s.routes()
	return s
}

// WithLogger sets the request logger
func (s *Server) WithLogger(logger *logging.Logger) *Server {
	s.logger = logger
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /players/new", s.handleCreatePlayer)
	s.mux.HandleFunc("POST /players/login", s.handleLogin)
	s.mux.HandleFunc("GET /players/ranking", s.handleRanking)
	s.mux.HandleFunc("GET /players/{id}", s.handleGetPlayer)
	s.mux.HandleFunc("GET /players/{id}/stats", s.handlePlayerStats)
	s.mux.HandleFunc("GET /players/{id}/history", s.handlePlayerHistory)
	s.mux.HandleFunc("DELETE /players/{id}", s.handleDeletePlayer)

	s.mux.HandleFunc("POST /games/new", s.handleNewGame)
	s.mux.HandleFunc("GET /games/{id}", s.handleGetGame)
	s.mux.HandleFunc("POST /games/{id}/hit", s.gameAction(s.games.Hit))
	s.mux.HandleFunc("POST /games/{id}/stand", s.handleStand)
	s.mux.HandleFunc("POST /games/{id}/crupier-hit", s.gameAction(s.games.CrupierHit))
	s.mux.HandleFunc("DELETE /games/{id}/delete", s.handleDeleteGame)
}

// ServeHTTP logs every request and dispatches it to the route table
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	s.logger.Debug("%s %s -> %d (%s)", r.Method, r.URL.Path, rec.status, time.Since(start))
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !s.decode(w, r, &req) {
		return
	}
	p, err := s.players.CreatePlayer(r.Context(), req.Name)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newPlayerResponse(p))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !s.decode(w, r, &req) {
		return
	}
	p, created, err := s.players.Login(r.Context(), req.Name)
	if err != nil {
		s.fail(w, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, loginResponse{Player: newPlayerResponse(p), Created: created})
}

func (s *Server) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	p, err := s.players.GetPlayer(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newPlayerResponse(p))
}

func (s *Server) handlePlayerStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.stats.GetPlayerStats(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handlePlayerHistory(w http.ResponseWriter, r *http.Request) {
	limit, ok := s.queryInt(w, r, "limit", historyLimit)
	if !ok {
		return
	}
	history, err := s.stats.GetPlayerHistory(r.Context(), r.PathValue("id"), limit)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

func (s *Server) handleRanking(w http.ResponseWriter, r *http.Request) {
	page, ok := s.queryInt(w, r, "page", 1)
	if !ok {
		return
	}
	perPage, ok := s.queryInt(w, r, "perPage", 10)
	if !ok {
		return
	}
	board, err := s.stats.GetRanking(r.Context(), page, perPage)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

func (s *Server) handleDeletePlayer(w http.ResponseWriter, r *http.Request) {
	if err := s.players.DeletePlayer(r.Context(), r.PathValue("id")); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.PlayerID == "" {
		writeError(w, http.StatusBadRequest, types.ErrInvalidArgument, "playerId is required")
		return
	}
	g, err := s.games.NewGame(r.Context(), req.PlayerID)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newGameResponse(g))
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	g, err := s.games.GetGame(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newGameResponse(g))
}

// handleStand hands over to the crupier; with ?auto=true the crupier's whole
// turn is played before responding.
func (s *Server) handleStand(w http.ResponseWriter, r *http.Request) {
	auto := false
	if v := r.URL.Query().Get("auto"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, types.ErrInvalidArgument, "auto must be a boolean")
			return
		}
		auto = b
	}
	if auto {
		s.gameAction(s.games.StandAndPlay)(w, r)
		return
	}
	s.gameAction(s.games.Stand)(w, r)
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := s.games.DeleteGame(r.Context(), r.PathValue("id")); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) gameAction(fn func(context.Context, string) (*entities.GameRecord, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, err := fn(r.Context(), r.PathValue("id"))
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, newGameResponse(g))
	}
}

// Helper functions

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, types.ErrInvalidArgument, "invalid request body")
		return false
	}
	return true
}

func (s *Server) queryInt(w http.ResponseWriter, r *http.Request, key string, def int) (int, bool) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		writeError(w, http.StatusBadRequest, types.ErrInvalidArgument, key+" must be a number")
		return 0, false
	}
	return n, true
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	code := types.CodeOf(err)
	status := statusFor(code)
	if status == http.StatusInternalServerError {
		s.logger.LogError(err)
		writeError(w, status, code, "internal error")
		return
	}

	message := err.Error()
	var gameErr *types.GameError
	if types.As(err, &gameErr) {
		message = gameErr.Message
	}
	writeError(w, status, code, message)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
