package routes

import (
	"net/http"

	"github.com/krishirakshak/backend/internal/api/handlers"
	"github.com/krishirakshak/backend/internal/api/middleware"
	"github.com/krishirakshak/backend/internal/infrastructure/observability"
)

// Router holds all route handlers

type Router struct {
	mux *http.ServeMux

	askHandler     *handlers.AskHandler
	analyzeHandler *handlers.AnalyzeHandler
	historyHandler *handlers.HistoryHandler

	feedbackHandler *handlers.FeedbackHandler

	metrics *observability.Metrics
}

// NewRouter creates a new router

func NewRouter(
	askHandler *handlers.AskHandler,
	analyzeHandler *handlers.AnalyzeHandler,
	historyHandler *handlers.HistoryHandler,
	feedbackHandler *handlers.FeedbackHandler,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		askHandler:     askHandler,
		analyzeHandler: analyzeHandler,
		historyHandler: historyHandler,

		feedbackHandler: feedbackHandler,

		metrics: metrics,
	}
}

// SetupRoutes configures all application routes

func (r *Router) SetupRoutes() http.Handler {

	// Health check endpoint

	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {

		w.WriteHeader(http.StatusOK)

		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}

	})

	// Safety question endpoints

	r.mux.HandleFunc("POST /api/ask-safety-question", r.askHandler.AskSafetyQuestion)

	r.mux.HandleFunc("GET /api/questions/samples", r.askHandler.SampleQuestions)

	// Hazard analysis endpoint

	r.mux.HandleFunc("POST /api/analyze-hazards", r.analyzeHandler.AnalyzeHazards)

	// History endpoints

	r.mux.HandleFunc("GET /api/history/questions", r.historyHandler.QuestionHistory)

	r.mux.HandleFunc("GET /api/history/hazards", r.historyHandler.HazardHistory)

	// Feedback endpoints

	r.mux.HandleFunc("POST /api/feedback", r.feedbackHandler.SubmitFeedback)

	// Apply middleware in reverse order (last middleware wraps first)
	// CORS must be outermost so cached responses also get CORS headers.

	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.metrics != nil {
		handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	}

	// Apply HTTP performance optimizations (compression, ETag, cache headers)
	handler = middleware.ResponseOptimization(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(handler)

	return handler
}
