package server

import (
	"errors"
	"net/http"

	"github.com/anand/career-pilot/internal/cv"
	"github.com/anand/career-pilot/internal/server/middleware"
)

// handleCompileCV builds the LaTeX CV from the stored profile and compiles it
// to PDF via the remote service. When compilation fails, the response carries
// an Overleaf link so the client can open the document there instead.
func (s *Server) handleCompileCV(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	source := &dbProfileSource{store: s.store, userID: userID}
	profile, err := source.FetchProfile(r.Context())
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	document, err := cv.Document(profile)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	pdf, err := s.compiler.Compile(r.Context(), document)
	if err != nil {
		var compileErr *cv.CompileError
		if errors.As(err, &compileErr) {
			writeJSON(w, http.StatusBadGateway, map[string]string{
				"error":        compileErr.Error(),
				"overleaf_url": cv.OverleafURL(document),
			})
			return
		}
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="cv.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		return
	}
}

// handleCVSource returns the LaTeX source and the Overleaf link without
// compiling, for clients that want the editor flow directly.
func (s *Server) handleCVSource(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	source := &dbProfileSource{store: s.store, userID: userID}
	profile, err := source.FetchProfile(r.Context())
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	document, err := cv.Document(profile)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"latex":        document,
		"overleaf_url": cv.OverleafURL(document),
	})
}
