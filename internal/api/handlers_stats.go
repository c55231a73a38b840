package api

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleLoadStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"path":  s.cfg.ResultsPath,
		"stats": s.src.Stats(),
	})
}
