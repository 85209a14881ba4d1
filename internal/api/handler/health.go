package handler

import (
	"net/http"

	"github.com/pkitools/keyscan/internal/api/dto"
)

// HealthHandler handles the liveness endpoint.
type HealthHandler struct {
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, dto.HealthResponse{Status: "ok", Version: h.version})
}
