package handlers

import "net/http"

// Health is a liveness probe.
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"service": "bookshelf-api",
		"status":  "ok",
	})
}
