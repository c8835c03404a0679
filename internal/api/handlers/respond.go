package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/krishirakshak/backend/pkg/errors"
)

// Helper functions
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithAppError maps an application error to its HTTP status. The
// AppError message is user-facing; anything else gets a generic 500.
func respondWithAppError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		respondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	switch appErr.Type {
	case apperrors.ErrorTypeInput, apperrors.ErrorTypeRemoteValidation:
		respondWithError(w, http.StatusBadRequest, appErr.Message)
	case apperrors.ErrorTypeRemoteThrottled:
		w.Header().Set("Retry-After", "30")
		respondWithError(w, http.StatusTooManyRequests, appErr.Message)
	case apperrors.ErrorTypeRemoteAccessDenied:
		respondWithError(w, http.StatusForbidden, appErr.Message)
	case apperrors.ErrorTypeRemoteTimeout:
		respondWithError(w, http.StatusGatewayTimeout, appErr.Message)
	case apperrors.ErrorTypeData:
		respondWithError(w, http.StatusBadGateway, appErr.Message)
	default:
		respondWithError(w, http.StatusInternalServerError, appErr.Message)
	}
}
