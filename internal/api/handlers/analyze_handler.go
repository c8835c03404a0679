package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/krishirakshak/backend/internal/domain/entities"
)

// maxAnalyzeBody bounds the request body; base64 inflates a 5 MB image by
// roughly a third.
const maxAnalyzeBody = 8 << 20

// ImageAnalyzer defines the analysis operation used by the handler.
type ImageAnalyzer interface {
	Analyze(ctx context.Context, imageData, language string) (*entities.HazardReport, error)
}

// AnalyzeHandler handles hazard analysis requests.
type AnalyzeHandler struct {
	analyzer ImageAnalyzer
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(analyzer ImageAnalyzer) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: analyzer}
}

type analyzeRequest struct {
	Image    string `json:"image"`
	Language string `json:"language"`
}

// AnalyzeHazards handles POST /api/analyze-hazards
func (h *AnalyzeHandler) AnalyzeHazards(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAnalyzeBody)

	var payload analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			respondWithError(w, http.StatusRequestEntityTooLarge, "image exceeds the 5 MB limit")
			return
		}
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	report, err := h.analyzer.Analyze(r.Context(), payload.Image, payload.Language)
	if err != nil {
		if r.Context().Err() != nil {
			return
		}
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}
