package server

import (
	"context"
	"net/http"

	"github.com/anand/career-pilot/internal/content"
	"github.com/anand/career-pilot/internal/server/middleware"
)

// tabResponse is the wire shape for content loads.
type tabResponse struct {
	Category  content.Category `json:"category"`
	Records   any              `json:"records"`
	Count     int              `json:"count"`
	Freshness string           `json:"freshness"`
}

// handleGetContent serves one content tab, from cache when the entry was
// fetched today and from the generator otherwise.
func (s *Server) handleGetContent(w http.ResponseWriter, r *http.Request) {
	s.serveTab(w, r, func(ctx context.Context, orch *content.Orchestrator, cat content.Category) (*content.RecordSet, error) {
		return orch.LoadTab(ctx, cat)
	})
}

// handleRefreshContent regenerates one content tab regardless of freshness.
func (s *Server) handleRefreshContent(w http.ResponseWriter, r *http.Request) {
	s.serveTab(w, r, func(ctx context.Context, orch *content.Orchestrator, cat content.Category) (*content.RecordSet, error) {
		return orch.RefreshTab(ctx, cat)
	})
}

func (s *Server) serveTab(w http.ResponseWriter, r *http.Request,
	load func(context.Context, *content.Orchestrator, content.Category) (*content.RecordSet, error)) {

	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	cat, ok := content.ParseCategory(r.PathValue("category"))
	if !ok {
		writeError(w, http.StatusNotFound, "Unknown content category")
		return
	}

	orch, err := s.sessions.Get(r.Context(), userID)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	rs, err := load(r.Context(), orch, cat)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, tabResponse{
		Category:  cat,
		Records:   rs.Items(),
		Count:     rs.Len(),
		Freshness: orch.Freshness(cat),
	})
}

// handleContentFreshness reports the relative age of a cached tab without
// triggering generation.
func (s *Server) handleContentFreshness(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	cat, ok := content.ParseCategory(r.PathValue("category"))
	if !ok {
		writeError(w, http.StatusNotFound, "Unknown content category")
		return
	}

	orch, err := s.sessions.Get(r.Context(), userID)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	entry, cached := orch.Cache().Get(cat)
	resp := map[string]any{
		"category":  cat,
		"cached":    cached,
		"freshness": orch.Freshness(cat),
	}
	if cached {
		resp["fetched_at"] = entry.FetchedAt
		resp["fresh"] = orch.Cache().IsFresh(cat)
	}
	writeJSON(w, http.StatusOK, resp)
}
