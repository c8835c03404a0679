package handlers

import (
	"net/http"
	"strconv"

	"github.com/krishirakshak/backend/internal/offline"
)

const defaultHistoryLimit = 20

// HistoryHandler serves the offline Q&A cache and hazard analysis history.
type HistoryHandler struct {
	store   *offline.Store
	hazards *offline.HazardHistory
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(store *offline.Store, hazards *offline.HazardHistory) *HistoryHandler {
	return &HistoryHandler{
		store:   store,
		hazards: hazards,
	}
}

// QuestionHistory handles GET /api/history/questions
func (h *HistoryHandler) QuestionHistory(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, defaultHistoryLimit)

	entries, err := h.store.History(r.Context(), limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load question history")
		return
	}

	size, err := h.store.Size(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load cache size")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"questions": entries,
		"count":     len(entries),
		"cache":     size,
	})
}

// HazardHistory handles GET /api/history/hazards
func (h *HistoryHandler) HazardHistory(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, defaultHistoryLimit)

	records, err := h.hazards.List(r.Context(), limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load hazard history")
		return
	}

	stats, err := h.hazards.Stats(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load hazard stats")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"analyses": records,
		"count":    len(records),
		"by_risk":  stats,
	})
}

func parseLimit(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}
