// ABOUTME: Task workflow: ownership-scoped task CRUD, completion, and search
// ABOUTME: Every operation resolves the task's project to the requesting user first

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ayoubater23/taskmanager-backend/internal/store"
)

// TaskWorkflowStore defines the store operations the task workflow needs.
type TaskWorkflowStore interface {
	GetProject(ctx context.Context, id string) (*store.Project, error)
	CreateTask(ctx context.Context, task *store.Task) error
	GetTask(ctx context.Context, id string) (*store.Task, error)
	ListTasksByProject(ctx context.Context, projectID string) ([]*store.Task, error)
	UpdateTask(ctx context.Context, task *store.Task) error
	DeleteTask(ctx context.Context, id string) error
	SearchTasks(ctx context.Context, projectID string, filter store.TaskFilter) ([]*store.Task, error)
}

// TaskSummary is the read model returned for every task operation.
type TaskSummary struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Completed   bool       `json:"completed"`
}

// TaskPatch carries a partial update. Nil fields are left unchanged; a
// pointer to the zero value overwrites with that zero value, so "absent"
// and "set to empty" are distinct. There is no way to clear DueDate once
// set.
type TaskPatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Completed   *bool      `json:"completed"`
}

// TaskService implements the task workflow.
type TaskService struct {
	store  TaskWorkflowStore
	logger *slog.Logger
}

// NewTaskService creates a TaskService over the given store.
func NewTaskService(s TaskWorkflowStore) *TaskService {
	return &TaskService{
		store:  s,
		logger: slog.Default().With("component", "task-service"),
	}
}

// Create creates an incomplete task under a project the user owns.
func (s *TaskService) Create(ctx context.Context, projectID, userID, title, description string, dueDate *time.Time) (*TaskSummary, error) {
	project, err := ownedProject(ctx, s.store, projectID, userID)
	if err != nil {
		return nil, err
	}

	task := &store.Task{
		ProjectID:   project.ID,
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Completed:   false,
	}
	if err := s.store.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	s.logger.Info("created task", "task_id", task.ID, "project_id", project.ID)
	return summarizeTask(task), nil
}

// List returns summaries for every task under a project the user owns.
func (s *TaskService) List(ctx context.Context, projectID, userID string) ([]*TaskSummary, error) {
	project, err := ownedProject(ctx, s.store, projectID, userID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.store.ListTasksByProject(ctx, project.ID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return summarizeTasks(tasks), nil
}

// Delete removes a task after resolving its project to the requesting user.
func (s *TaskService) Delete(ctx context.Context, taskID, userID string) error {
	task, err := s.ownedTask(ctx, taskID, userID)
	if err != nil {
		return err
	}

	if err := s.store.DeleteTask(ctx, task.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting task: %w", err)
	}

	s.logger.Info("deleted task", "task_id", task.ID, "user_id", userID)
	return nil
}

// MarkCompleted sets a task's completed flag. Re-marking an already
// completed task is a no-op success.
func (s *TaskService) MarkCompleted(ctx context.Context, taskID, userID string) (*TaskSummary, error) {
	task, err := s.ownedTask(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	task.Completed = true
	if err := s.store.UpdateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}
	return summarizeTask(task), nil
}

// Update applies a partial update to a task the user owns. See TaskPatch
// for field semantics.
func (s *TaskService) Update(ctx context.Context, taskID, userID string, patch TaskPatch) (*TaskSummary, error) {
	task, err := s.ownedTask(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}

	if err := s.store.UpdateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}
	return summarizeTask(task), nil
}

// Search returns tasks under a project the user owns, narrowed by the
// filter. Empty-string title/description filters are treated as absent,
// not as "match empty string".
func (s *TaskService) Search(ctx context.Context, projectID, userID string, filter store.TaskFilter) ([]*TaskSummary, error) {
	project, err := ownedProject(ctx, s.store, projectID, userID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.store.SearchTasks(ctx, project.ID, filter)
	if err != nil {
		return nil, fmt.Errorf("searching tasks: %w", err)
	}
	return summarizeTasks(tasks), nil
}

// ownedTask resolves a task and verifies the requesting user owns its
// project. The one-hop equivalent of ownedProject for task-addressed
// operations.
func (s *TaskService) ownedTask(ctx context.Context, taskID, userID string) (*store.Task, error) {
	task, err := s.store.GetTask(ctx, taskID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading task: %w", err)
	}

	if _, err := ownedProject(ctx, s.store, task.ProjectID, userID); err != nil {
		return nil, err
	}
	return task, nil
}

func summarizeTask(task *store.Task) *TaskSummary {
	return &TaskSummary{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Completed:   task.Completed,
	}
}

func summarizeTasks(tasks []*store.Task) []*TaskSummary {
	summaries := make([]*TaskSummary, 0, len(tasks))
	for _, task := range tasks {
		summaries = append(summaries, summarizeTask(task))
	}
	return summaries
}
