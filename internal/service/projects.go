// ABOUTME: Project workflow: ownership-scoped project CRUD
// ABOUTME: Computes per-project progress summaries from live task counts

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ayoubater23/taskmanager-backend/internal/store"
)

// ProjectWorkflowStore defines the store operations the project workflow needs.
type ProjectWorkflowStore interface {
	GetUser(ctx context.Context, id string) (*store.User, error)
	CreateProject(ctx context.Context, project *store.Project) error
	GetProject(ctx context.Context, id string) (*store.Project, error)
	ListProjectsByUser(ctx context.Context, userID string) ([]*store.Project, error)
	DeleteProject(ctx context.Context, id string) error
	CountTasks(ctx context.Context, projectID string) (int, error)
	CountCompletedTasks(ctx context.Context, projectID string) (int, error)
}

// ProjectSummary is the read model returned for every project operation.
// Progress is a percentage in [0, 100], 0 for a project with no tasks.
type ProjectSummary struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	TotalTasks     int       `json:"total_tasks"`
	CompletedTasks int       `json:"completed_tasks"`
	Progress       float64   `json:"progress"`
}

// ProjectService implements the project workflow.
type ProjectService struct {
	store  ProjectWorkflowStore
	logger *slog.Logger
}

// NewProjectService creates a ProjectService over the given store.
func NewProjectService(s ProjectWorkflowStore) *ProjectService {
	return &ProjectService{
		store:  s,
		logger: slog.Default().With("component", "project-service"),
	}
}

// Create creates a project owned by the given user.
// Returns ErrNotFound if the user doesn't exist.
func (s *ProjectService) Create(ctx context.Context, userID, title, description string) (*ProjectSummary, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	project := &store.Project{
		UserID:      userID,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.CreateProject(ctx, project); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	s.logger.Info("created project", "project_id", project.ID, "user_id", userID)
	return s.summarize(ctx, project)
}

// List returns summaries for every project owned by the user.
// Returns ErrNotFound if the user doesn't exist.
func (s *ProjectService) List(ctx context.Context, userID string) ([]*ProjectSummary, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	projects, err := s.store.ListProjectsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	summaries := make([]*ProjectSummary, 0, len(projects))
	for _, project := range projects {
		summary, err := s.summarize(ctx, project)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Get returns the summary of a single project after an ownership check.
func (s *ProjectService) Get(ctx context.Context, projectID, userID string) (*ProjectSummary, error) {
	project, err := ownedProject(ctx, s.store, projectID, userID)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, project)
}

// Delete removes a project after an ownership check. The project's tasks
// are removed with it.
func (s *ProjectService) Delete(ctx context.Context, projectID, userID string) error {
	if _, err := ownedProject(ctx, s.store, projectID, userID); err != nil {
		return err
	}

	if err := s.store.DeleteProject(ctx, projectID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting project: %w", err)
	}

	s.logger.Info("deleted project", "project_id", projectID, "user_id", userID)
	return nil
}

func (s *ProjectService) requireUser(ctx context.Context, userID string) error {
	_, err := s.store.GetUser(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("loading user: %w", err)
	}
	return nil
}

// summarize recomputes task counts and progress from the store on every
// read; nothing is cached or denormalized.
func (s *ProjectService) summarize(ctx context.Context, project *store.Project) (*ProjectSummary, error) {
	total, err := s.store.CountTasks(ctx, project.ID)
	if err != nil {
		return nil, fmt.Errorf("counting tasks: %w", err)
	}
	completed, err := s.store.CountCompletedTasks(ctx, project.ID)
	if err != nil {
		return nil, fmt.Errorf("counting completed tasks: %w", err)
	}

	progress := 0.0
	if total > 0 {
		progress = float64(completed) * 100.0 / float64(total)
	}

	return &ProjectSummary{
		ID:             project.ID,
		Title:          project.Title,
		Description:    project.Description,
		CreatedAt:      project.CreatedAt,
		TotalTasks:     total,
		CompletedTasks: completed,
		Progress:       progress,
	}, nil
}
