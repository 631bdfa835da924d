package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/anand/career-pilot/internal/db"
	"github.com/anand/career-pilot/internal/server/middleware"
	"github.com/anand/career-pilot/internal/types"
)

// handleGetProfile returns the signed-in user's account and career profile
// as a single envelope.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := s.store.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load account")
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "Account not found")
		return
	}

	profile, err := s.store.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}
	if profile == nil {
		profile = &db.Profile{UserID: userID}
	}

	writeJSON(w, http.StatusOK, buildProfileEnvelope(user, profile))
}

// handleUpdateProfile upserts the career profile and drops the cached
// content session so the next load sees the new profile.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	profile := &db.Profile{
		UserID:        userID,
		Qualification: req.Qualification,
		Address:       req.Address,
		Skills:        req.Skills,
		Industries:    req.Industries,
		Experience:    req.Experience,
		Education:     req.Education,
	}
	if req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date_of_birth must be YYYY-MM-DD")
			return
		}
		profile.DateOfBirth = &db.Date{Time: parsed}
	}

	if err := s.store.UpsertProfile(r.Context(), userID, profile); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	s.sessions.Drop(userID)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Profile updated"})
}
