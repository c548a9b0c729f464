package server

import (
	"encoding/json"
	"net/http"
)

// HealthHandler reports liveness plus which providers are configured.
type HealthHandler struct {
	gen Generator
}

func NewHealthHandler(gen Generator) *HealthHandler {
	return &HealthHandler{gen: gen}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(capabilitiesResponse(h.gen.Capabilities()))
}
