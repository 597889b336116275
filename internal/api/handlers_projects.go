// ABOUTME: HTTP handlers for project CRUD
// ABOUTME: All operations act as the authenticated user from the request context

package api

import (
	"net/http"

	"github.com/Ayoubater23/taskmanager-backend/internal/auth"
)

type projectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	authCtx := auth.MustFromContext(r.Context())

	var req projectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	v := newValidator()
	v.checkTitle(req.Title)
	if err := v.err(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := s.projects.Create(r.Context(), authCtx.UserID, req.Title, req.Description)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, summary)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	authCtx := auth.MustFromContext(r.Context())

	summaries, err := s.projects.List(r.Context(), authCtx.UserID)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	authCtx := auth.MustFromContext(r.Context())

	summary, err := s.projects.Get(r.Context(), r.PathValue("id"), authCtx.UserID)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	authCtx := auth.MustFromContext(r.Context())

	if err := s.projects.Delete(r.Context(), r.PathValue("id"), authCtx.UserID); err != nil {
		s.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
