package web

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/kunjpatel/go-mood-recommender/internal/catalog"
	"github.com/kunjpatel/go-mood-recommender/internal/db"
	"github.com/kunjpatel/go-mood-recommender/internal/embedding"
	"github.com/kunjpatel/go-mood-recommender/internal/mood"
	"github.com/kunjpatel/go-mood-recommender/internal/recommend"
)

// Recommender is the pipeline capability the handlers need.
type Recommender interface {
	Recommend(ctx context.Context, moodText string, k int) (*recommend.Result, error)
}

// Handlers holds HTTP handlers for the recommendation API.
type Handlers struct {
	pipeline Recommender
	profiles []mood.Profile
	history  *db.HistoryRepository // nil disables recording
}

// NewHandlers creates the API handlers.
func NewHandlers(pipeline Recommender, profiles []mood.Profile, history *db.HistoryRepository) *Handlers {
	return &Handlers{pipeline: pipeline, profiles: profiles, history: history}
}

// recommendRequest is the POST /api/recommend body.
type recommendRequest struct {
	Mood  string `json:"mood"`
	Limit int    `json:"limit"`
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

// Health handles GET /healthz.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Moods handles GET /api/moods, returning the configured canonical
// mood profiles in classification order.
func (h *Handlers) Moods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.profiles)
}

// Recommend handles POST /api/recommend.
func (h *Handlers) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	req.Mood = strings.TrimSpace(req.Mood)
	if req.Mood == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "mood is required"})
		return
	}
	if req.Limit > recommend.MaxResults {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit exceeds maximum"})
		return
	}

	result, err := h.pipeline.Recommend(r.Context(), req.Mood, req.Limit)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, embedding.ErrNoVectorizableTokens):
			status = http.StatusUnprocessableEntity
		case errors.Is(err, embedding.ErrUnavailable), errors.Is(err, catalog.ErrUnavailable):
			status = http.StatusBadGateway
		}
		log.Printf("Recommendation failed for %q: %v", req.Mood, err)
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	h.recordHistory(req.Mood, result)
	writeJSON(w, http.StatusOK, result)
}

// recordHistory persists the served recommendation when history is
// enabled. Failures are logged, never surfaced: history is best-effort.
func (h *Handlers) recordHistory(input string, result *recommend.Result) {
	if h.history == nil {
		return
	}

	rec := &db.Recommendation{
		MoodInput:          input,
		MatchedMood:        result.Mood,
		Similarity:         result.Similarity,
		TargetValence:      result.Target.Valence,
		TargetEnergy:       result.Target.Energy,
		TargetTempo:        result.Target.Tempo,
		TargetDanceability: result.Target.Danceability,
	}
	tracks := make([]db.RecommendationTrack, len(result.Tracks))
	for i, t := range result.Tracks {
		tracks[i] = db.RecommendationTrack{
			Position: i + 1,
			TrackID:  t.ID,
			Title:    t.Title,
			Artist:   t.Artist,
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.history.Record(ctx, rec, tracks); err != nil {
		log.Printf("Recording recommendation history: %v", err)
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Encoding response: %v", err)
	}
}
