// ABOUTME: HTTP handlers for task CRUD, completion, and search
// ABOUTME: Task operations resolve ownership through the parent project

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Ayoubater23/taskmanager-backend/internal/auth"
	"github.com/Ayoubater23/taskmanager-backend/internal/service"
	"github.com/Ayoubater23/taskmanager-backend/internal/store"
)

type taskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	authCtx := auth.MustFromContext(r.Context())

	var req taskRequest
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

	summary, err := s.tasks.Create(r.Context(), r.PathValue("id"), authCtx.UserID, req.Title, req.Description, req.DueDate)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, summary)
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	authCtx := auth.MustFromContext(r.Context())

	summaries, err := s.tasks.List(r.Context(), r.PathValue("id"), authCtx.UserID)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	authCtx := auth.MustFromContext(r.Context())

	var patch service.TaskPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if patch.Title != nil {
		v := newValidator()
		v.checkTitle(*patch.Title)
		if err := v.err(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	summary, err := s.tasks.Update(r.Context(), r.PathValue("id"), authCtx.UserID, patch)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	authCtx := auth.MustFromContext(r.Context())

	if err := s.tasks.Delete(r.Context(), r.PathValue("id"), authCtx.UserID); err != nil {
		s.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	authCtx := auth.MustFromContext(r.Context())

	summary, err := s.tasks.MarkCompleted(r.Context(), r.PathValue("id"), authCtx.UserID)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleSearchTasks(w http.ResponseWriter, r *http.Request) {
	authCtx := auth.MustFromContext(r.Context())

	filter, err := taskFilterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	summaries, err := s.tasks.Search(r.Context(), r.PathValue("id"), authCtx.UserID, filter)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summaries)
}

// taskFilterFromQuery parses search filters from query parameters.
// Absent or empty title/description parameters mean no filter.
func taskFilterFromQuery(r *http.Request) (store.TaskFilter, error) {
	q := r.URL.Query()
	filter := store.TaskFilter{
		Title:       q.Get("title"),
		Description: q.Get("description"),
	}

	if raw := q.Get("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, errParam("completed", "must be true or false")
		}
		filter.Completed = &completed
	}

	if raw := q.Get("due_from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, errParam("due_from", "must be an RFC3339 timestamp")
		}
		filter.DueFrom = &from
	}

	if raw := q.Get("due_to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, errParam("due_to", "must be an RFC3339 timestamp")
		}
		filter.DueTo = &to
	}

	return filter, nil
}
