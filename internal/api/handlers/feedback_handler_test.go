package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/krishirakshak/backend/internal/api/handlers"
	"github.com/krishirakshak/backend/internal/domain/entities"
)

type stubFeedbackService struct {
	created []*entities.Feedback
}

func (s *stubFeedbackService) Create(ctx context.Context, feedback *entities.Feedback) error {
	if feedback.ID == "" {
		feedback.ID = "test-id"
	}
	s.created = append(s.created, feedback)
	return nil
}

func TestFeedbackHandler_SubmitFeedback_Success(t *testing.T) {
	service := &stubFeedbackService{}
	handler := handlers.NewFeedbackHandler(service, nil)

	body := `{"question":"How to store pesticide?","helpful":true,"language":"en","comment":"Clear answer"}`
	req := httptest.NewRequest("POST", "/api/feedback", strings.NewReader(body))
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()

	handler.SubmitFeedback(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, service.created, 1)
	assert.Equal(t, "en", service.created[0].Language)

	var response map[string]string
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "received", response["status"])
	assert.NotEmpty(t, response["id"])
}

func TestFeedbackHandler_SubmitFeedback_RequiresQuestion(t *testing.T) {
	service := &stubFeedbackService{}
	handler := handlers.NewFeedbackHandler(service, nil)

	body := `{"helpful":true,"language":"en"}`
	req := httptest.NewRequest("POST", "/api/feedback", strings.NewReader(body))
	req.RemoteAddr = "10.0.0.3:1234"
	w := httptest.NewRecorder()

	handler.SubmitFeedback(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, service.created)
}

func TestFeedbackHandler_SubmitFeedback_RateLimit(t *testing.T) {
	service := &stubFeedbackService{}
	handler := handlers.NewFeedbackHandler(service, nil)

	for i := 0; i < 5; i++ {
		body := `{"question":"q-` + strconv.Itoa(i) + `","helpful":true}`
		req := httptest.NewRequest("POST", "/api/feedback", strings.NewReader(body))
		req.RemoteAddr = "10.0.0.2:1234"
		w := httptest.NewRecorder()
		handler.SubmitFeedback(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	body := `{"question":"q-over","helpful":true}`
	req := httptest.NewRequest("POST", "/api/feedback", strings.NewReader(body))
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	handler.SubmitFeedback(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestFeedbackHandler_SubmitFeedback_Duplicate(t *testing.T) {
	service := &stubFeedbackService{}
	handler := handlers.NewFeedbackHandler(service, nil)

	body := `{"question":"Is this duplicate?","helpful":false,"comment":"same words"}`
	req := httptest.NewRequest("POST", "/api/feedback", strings.NewReader(body))
	req.RemoteAddr = "10.0.0.9:1234"
	w := httptest.NewRecorder()

	handler.SubmitFeedback(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	req2 := httptest.NewRequest("POST", "/api/feedback", strings.NewReader(body))
	req2.RemoteAddr = "10.0.0.9:1234"
	w2 := httptest.NewRecorder()

	handler.SubmitFeedback(w2, req2)
	assert.Equal(t, http.StatusAccepted, w2.Code)
	assert.Len(t, service.created, 1)
}
