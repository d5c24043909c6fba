package handlers

import (
	"encoding/json"
	"net/http"
)

// HealthHandler responds with service health information.
type HealthHandler struct{}

// Handle implements GET /healthz.
func (HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	payload := map[string]string{
		"status": "ok",
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

// IndexHandler summarises the API surface at the root path.
type IndexHandler struct{}

// Handle implements GET /.
func (IndexHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	payload := map[string]any{
		"status":  "online",
		"message": "Welcome to the VideoBase API",
		"endpoints": map[string][]string{
			"auth":   {"/auth/signup", "/auth/login", "/auth/me", "/auth/logout"},
			"videos": {"/dashboard", "/video/{id}/stream", "/video/{id}/play"},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}
