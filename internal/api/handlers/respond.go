// Response helpers shared by all handlers. Error helpers keep internal
// detail out of client-facing bodies; storage and driver failures are
// logged here and answered with a fixed generic message.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Error().Err(err).Msg("failed to encode response body")
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondValidationErrors sends the field-level error map collected by a
// validator as a 400 response.
func respondValidationErrors(w http.ResponseWriter, errors map[string]string) {
	respondJSON(w, http.StatusBadRequest, map[string]any{"errors": errors})
}

// respondServerError logs the real error and answers with a generic 500.
func respondServerError(w http.ResponseWriter, r *http.Request, err error) {
	log.Error().Err(err).
		Str("method", r.Method).
		Str("url", r.URL.String()).
		Msg("request failed")
	respondError(w, http.StatusInternalServerError,
		"the server encountered a problem and could not process your request")
}
