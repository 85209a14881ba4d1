package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pkitools/keyscan/internal/api/dto"
	"github.com/pkitools/keyscan/internal/report"
	"github.com/pkitools/keyscan/internal/scan"
)

// ScanHandler serves inventory scans over HTTP.
type ScanHandler struct {
	cfg *scan.Config
}

// NewScanHandler creates a ScanHandler using the given scanner settings.
func NewScanHandler(cfg *scan.Config) *ScanHandler {
	return &ScanHandler{cfg: cfg}
}

// Scan handles POST /api/v1/scan. The response carries the same entries,
// sorted the same way, as the CLI report for the same tree.
func (h *ScanHandler) Scan(w http.ResponseWriter, r *http.Request) {
	var req dto.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Paths) == 0 {
		respondError(w, http.StatusBadRequest, "paths is required")
		return
	}

	var warnings strings.Builder
	collector := scan.NewCollector(h.cfg, &warnings)
	entries, err := scan.Run(collector, req.Paths)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	report.Sort(entries)

	resp := dto.ScanResponse{Entries: entries}
	for _, line := range strings.Split(warnings.String(), "\n") {
		if line != "" {
			resp.Warnings = append(resp.Warnings, line)
		}
	}
	respondJSON(w, http.StatusOK, resp)
}
