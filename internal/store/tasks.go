// ABOUTME: SQLite implementation of TaskStore for task persistence
// ABOUTME: Handles task CRUD and filtered search within a project

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateTask persists a new task.
func (s *SQLiteStore) CreateTask(ctx context.Context, task *Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	task.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (id, project_id, title, description, due_date, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, task.ID, task.ProjectID, task.Title, task.Description, formatDueDate(task.DueDate),
		task.Completed, task.CreatedAt.Format(time.RFC3339), task.UpdatedAt.Format(time.RFC3339))

	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}

	s.logger.Info("created task", "id", task.ID, "project_id", task.ProjectID)
	return nil
}

// GetTask retrieves a task by ID.
func (s *SQLiteStore) GetTask(ctx context.Context, id string) (*Task, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, project_id, title, description, due_date, completed, created_at, updated_at
		FROM tasks WHERE id = ?
	`, id)

	task, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

// ListTasksByProject lists all tasks under a project.
func (s *SQLiteStore) ListTasksByProject(ctx context.Context, projectID string) ([]*Task, error) {
	return s.queryTasks(ctx, `
		SELECT id, project_id, title, description, due_date, completed, created_at, updated_at
		FROM tasks WHERE project_id = ? ORDER BY created_at DESC
	`, projectID)
}

// UpdateTask writes all mutable fields of a task back to the database.
// Returns ErrNotFound if the task no longer exists.
func (s *SQLiteStore) UpdateTask(ctx context.Context, task *Task) error {
	task.UpdatedAt = time.Now().UTC()

	result, err := s.db.ExecContext(ctx, `
		UPDATE tasks SET title = ?, description = ?, due_date = ?, completed = ?, updated_at = ?
		WHERE id = ?
	`, task.Title, task.Description, formatDueDate(task.DueDate), task.Completed,
		task.UpdatedAt.Format(time.RFC3339), task.ID)

	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTask removes a task by ID. Returns ErrNotFound if no row was deleted.
func (s *SQLiteStore) DeleteTask(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	s.logger.Info("deleted task", "id", id)
	return nil
}

// SearchTasks searches tasks within a project. See TaskFilter for filter
// semantics; unset filter fields match all tasks.
func (s *SQLiteStore) SearchTasks(ctx context.Context, projectID string, filter TaskFilter) ([]*Task, error) {
	var args []any
	sqlQuery := `
		SELECT id, project_id, title, description, due_date, completed, created_at, updated_at
		FROM tasks WHERE project_id = ?`
	args = append(args, projectID)

	if filter.Title != "" {
		sqlQuery += ` AND title LIKE ?`
		args = append(args, "%"+filter.Title+"%")
	}
	if filter.Description != "" {
		sqlQuery += ` AND description LIKE ?`
		args = append(args, "%"+filter.Description+"%")
	}
	if filter.Completed != nil {
		sqlQuery += ` AND completed = ?`
		args = append(args, *filter.Completed)
	}
	if filter.DueFrom != nil {
		sqlQuery += ` AND due_date >= ?`
		args = append(args, filter.DueFrom.Format(time.RFC3339))
	}
	if filter.DueTo != nil {
		sqlQuery += ` AND due_date <= ?`
		args = append(args, filter.DueTo.Format(time.RFC3339))
	}
	sqlQuery += ` ORDER BY created_at DESC`

	return s.queryTasks(ctx, sqlQuery, args...)
}

func (s *SQLiteStore) queryTasks(ctx context.Context, query string, args ...any) ([]*Task, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var tasks []*Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*Task, error) {
	var t Task
	var dueDate sql.NullString
	var createdAt, updatedAt string

	if err := row.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &dueDate, &t.Completed, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	t.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	if dueDate.Valid {
		d, _ := time.Parse(time.RFC3339, dueDate.String)
		t.DueDate = &d
	}
	return &t, nil
}

func formatDueDate(d *time.Time) *string {
	if d == nil {
		return nil
	}
	str := d.Format(time.RFC3339)
	return &str
}
