package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"

	"github.com/zatekoja/hospital-locator/backend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/hospital-locator/backend/pkg/errors"
)

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

// respondWithAppError maps an error onto a status code. Only client errors
// expose their message; everything else is logged, reported, and masked.
func respondWithAppError(w http.ResponseWriter, r *http.Request, err error) {
	var message string
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	switch apperrors.TypeOf(err) {
	case apperrors.ErrorTypeInvalidArgument:
		respondWithError(w, http.StatusBadRequest, message)
	case apperrors.ErrorTypeNotFound:
		respondWithError(w, http.StatusNotFound, message)
	case apperrors.ErrorTypeExternal:
		reportError(r, err)
		respondWithError(w, http.StatusBadGateway, "upstream service error")
	default:
		reportError(r, err)
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}

func reportError(r *http.Request, err error) {
	observability.LoggerFromContext(r.Context()).Error().
		Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("Request failed")

	if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
		hub.CaptureException(err)
	}
}
