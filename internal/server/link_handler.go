package server

import (
	"net/http"

	"github.com/anand/career-pilot/internal/server/middleware"
)

// handleValidateLink checks a generated link and, when it is dead, returns a
// search-engine fallback built from the label.
func (s *Server) handleValidateLink(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.GetUserID(r); err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		writeError(w, http.StatusBadRequest, "url query parameter is required")
		return
	}
	label := r.URL.Query().Get("label")
	if label == "" {
		label = r.URL.Query().Get("title")
	}

	result, err := s.checker.Validate(r.Context(), rawURL, label)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}
