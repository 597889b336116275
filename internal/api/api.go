// ABOUTME: HTTP API server wiring workflows to routes
// ABOUTME: Registers public auth routes and JWT-protected project/task routes

package api

import (
	"log/slog"
	"net/http"

	"github.com/Ayoubater23/taskmanager-backend/internal/auth"
	"github.com/Ayoubater23/taskmanager-backend/internal/service"
)

// Server handles the HTTP API routes.
type Server struct {
	auth     *service.AuthService
	projects *service.ProjectService
	tasks    *service.TaskService
	users    auth.UserLookup
	verifier auth.TokenVerifier
	logger   *slog.Logger
}

// New creates an API server over the given workflows.
func New(authSvc *service.AuthService, projects *service.ProjectService, tasks *service.TaskService, users auth.UserLookup, verifier auth.TokenVerifier) *Server {
	return &Server{
		auth:     authSvc,
		projects: projects,
		tasks:    tasks,
		users:    users,
		verifier: verifier,
		logger:   slog.Default().With("component", "api"),
	}
}

// RegisterRoutes registers all API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Public routes (no auth required)
	mux.HandleFunc("GET /api/healthcheck", s.handleHealthcheck)
	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)

	// Protected routes (auth required)
	authed := auth.HTTPAuthMiddleware(s.users, s.verifier)
	protect := func(h http.HandlerFunc) http.Handler { return authed(h) }

	mux.Handle("POST /api/projects", protect(s.handleCreateProject))
	mux.Handle("GET /api/projects", protect(s.handleListProjects))
	mux.Handle("GET /api/projects/{id}", protect(s.handleGetProject))
	mux.Handle("DELETE /api/projects/{id}", protect(s.handleDeleteProject))

	mux.Handle("POST /api/projects/{id}/tasks", protect(s.handleCreateTask))
	mux.Handle("GET /api/projects/{id}/tasks", protect(s.handleListTasks))
	mux.Handle("GET /api/projects/{id}/tasks/search", protect(s.handleSearchTasks))

	mux.Handle("PUT /api/tasks/{id}", protect(s.handleUpdateTask))
	mux.Handle("DELETE /api/tasks/{id}", protect(s.handleDeleteTask))
	mux.Handle("PATCH /api/tasks/{id}/complete", protect(s.handleCompleteTask))
}

// Handler returns the complete API handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	return mux
}

func (s *Server) handleHealthcheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "available"})
}
