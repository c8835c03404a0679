package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/krishirakshak/backend/internal/answers"
	"github.com/krishirakshak/backend/internal/domain/entities"
)

// QuestionResolver defines the resolution operation used by the handler.
type QuestionResolver interface {
	Resolve(ctx context.Context, question, language string, offlineMode bool) (*entities.Answer, error)
}

// AskHandler handles safety question requests.
type AskHandler struct {
	resolver QuestionResolver
}

// NewAskHandler creates a new ask handler.
func NewAskHandler(resolver QuestionResolver) *AskHandler {
	return &AskHandler{resolver: resolver}
}

type askRequest struct {
	Question string `json:"question"`
	Language string `json:"language"`
	Offline  bool   `json:"offline"`
}

// AskSafetyQuestion handles POST /api/ask-safety-question
func (h *AskHandler) AskSafetyQuestion(w http.ResponseWriter, r *http.Request) {
	var payload askRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	answer, err := h.resolver.Resolve(r.Context(), payload.Question, payload.Language, payload.Offline)
	if err != nil {
		if r.Context().Err() != nil {
			// Client went away; nothing useful to write
			return
		}
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, answer)
}

// SampleQuestions handles GET /api/questions/samples
func (h *AskHandler) SampleQuestions(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("language")
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"language":  answers.LangKey(language),
		"questions": answers.SampleQuestions(language),
	})
}
