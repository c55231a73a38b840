package api

import (
	"encoding/json"
	"net/http"
)

// handleReport returns the parsed report wrapped with load status.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	snap := s.src.Current()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":    snap.Status,
		"message":   snap.Message,
		"loaded_at": snap.LoadedAt,
		"report":    snap.Report,
	})
}

// handleReportDownload serves the bare report as a JSON attachment. An
// empty or degraded report downloads as {}.
func (s *Server) handleReportDownload(w http.ResponseWriter, r *http.Request) {
	snap := s.src.Current()

	data, err := json.MarshalIndent(snap.Report, "", "    ")
	if err != nil {
		jsonError(w, "failed to encode report: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="model_results.json"`)
	w.Write(data)
}
