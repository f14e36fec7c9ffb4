package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/omarshaarawi/scorebot/internal/api/espn"
	"github.com/omarshaarawi/scorebot/internal/league"
)

type ScoreService interface {
	ScoreData(ctx context.Context, identifier string, week int) ([]league.ScorePair, error)
}

type Handler struct {
	scores ScoreService
}

func NewRouter(scores ScoreService) http.Handler {
	h := &Handler{scores: scores}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/", h.HealthCheck)
	r.Get("/health", h.HealthCheck)
	r.Get("/api/score/{team}", h.Score)

	return r
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Score answers GET /api/score/{team}?week=N. Without week the current
// scoring period is used.
func (h *Handler) Score(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "team")

	week := 0
	if raw := r.URL.Query().Get("week"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondError(w, http.StatusBadRequest, "week must be a non-negative integer")
			return
		}
		week = parsed
	}

	pairs, err := h.scores.ScoreData(r.Context(), team, week)
	if err != nil {
		var ambiguous *league.AmbiguousTeamError
		switch {
		case errors.Is(err, league.ErrTeamNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		case errors.As(err, &ambiguous):
			respondError(w, http.StatusConflict, err.Error())
		case errors.Is(err, espn.ErrNoData):
			respondError(w, http.StatusBadGateway, err.Error())
		default:
			slog.Error("Score lookup failed", "team", team, "error", err)
			respondError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respondJSON(w, http.StatusOK, pairs)
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
