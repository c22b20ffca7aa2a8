package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fortuna/services/game-recap-service/internal/render"
	"github.com/fortuna/services/game-recap-service/pkg/contracts"
	"github.com/fortuna/services/game-recap-service/pkg/models"
)

// RecapSource produces recaps for one sport. Satisfied by
// pipeline.Pipeline; stubbed in tests.
type RecapSource interface {
	LatestRecap(ctx context.Context, identifier string, referenceDate time.Time) (*models.GameRecap, error)
	Module() contracts.SportModule
}

// RecapWriter snapshots a recap to the cache after a successful build.
type RecapWriter interface {
	WriteRecap(ctx context.Context, recap *models.GameRecap) error
}

// RecapPublisher publishes a recap to the update stream.
type RecapPublisher interface {
	PublishRecap(ctx context.Context, recap *models.GameRecap) error
}

// RecapHandler handles recap API endpoints
type RecapHandler struct {
	sources   map[string]RecapSource // keyed by sport key
	cache     RecapWriter            // nil when Redis is not configured
	publisher RecapPublisher         // nil when Redis is not configured
}

// NewRecapHandler creates a recap handler over the given sport pipelines
func NewRecapHandler(sources map[string]RecapSource, cache RecapWriter, publisher RecapPublisher) *RecapHandler {
	return &RecapHandler{
		sources:   sources,
		cache:     cache,
		publisher: publisher,
	}
}

// HealthCheck reports service liveness
// GET /health
func (h *RecapHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// HandleGetRecap returns the recap of a team's latest completed game
// GET /api/v1/teams/{team}/recap?sport={sport_key}&date=YYYY-MM-DD&format=json|markdown
func (h *RecapHandler) HandleGetRecap(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "team")
	if team == "" {
		http.Error(w, "team is required", http.StatusBadRequest)
		return
	}

	sportKey := r.URL.Query().Get("sport")
	if sportKey == "" {
		sportKey = "basketball_nba" // Default to NBA
	}

	source, ok := h.sources[sportKey]
	if !ok {
		http.Error(w, fmt.Sprintf("unknown sport: %s", sportKey), http.StatusNotFound)
		return
	}

	referenceDate := time.Now().UTC()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		referenceDate = parsed
	}

	ctx := r.Context()
	recap, err := source.LatestRecap(ctx, team, referenceDate)
	if err != nil {
		status := statusForError(err)
		http.Error(w, err.Error(), status)
		return
	}

	// Best effort: snapshot failures never fail the response.
	if h.cache != nil {
		if err := h.cache.WriteRecap(ctx, recap); err != nil {
			log.Printf("writing recap snapshot: %v", err)
		}
	}
	if h.publisher != nil {
		if err := h.publisher.PublishRecap(ctx, recap); err != nil {
			log.Printf("publishing recap: %v", err)
		}
	}

	if r.URL.Query().Get("format") == "markdown" {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		render.WriteMarkdown(w, recap, source.Module().TeamStatFields())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recap)
}

// HandleGetSports lists the registered sport keys
// GET /api/v1/sports
func (h *RecapHandler) HandleGetSports(w http.ResponseWriter, r *http.Request) {
	sports := make([]string, 0, len(h.sources))
	for key := range h.sources {
		sports = append(sports, key)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"sports": sports,
		"count":  len(sports),
	})
}

// statusForError maps pipeline failure kinds to HTTP statuses. A missing
// team and a season with no completed game are both "nothing here" (404);
// upstream trouble is a bad gateway.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrTeamNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrNoCompletedGame):
		return http.StatusNotFound
	case errors.Is(err, models.ErrUpstreamUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, models.ErrMissingBoxScore):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
