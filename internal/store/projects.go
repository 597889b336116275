// ABOUTME: SQLite implementation of ProjectStore for project persistence
// ABOUTME: Handles project CRUD and per-project task counts

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateProject persists a new project.
func (s *SQLiteStore) CreateProject(ctx context.Context, project *Project) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (id, user_id, title, description, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, project.ID, project.UserID, project.Title, project.Description,
		project.CreatedAt.Format(time.RFC3339))

	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}

	s.logger.Info("created project", "id", project.ID, "user_id", project.UserID)
	return nil
}

// GetProject retrieves a project by ID.
func (s *SQLiteStore) GetProject(ctx context.Context, id string) (*Project, error) {
	var p Project
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, description, created_at
		FROM projects WHERE id = ?
	`, id).Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &createdAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &p, nil
}

// ListProjectsByUser lists all projects owned by a user.
func (s *SQLiteStore) ListProjectsByUser(ctx context.Context, userID string) ([]*Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, title, description, created_at
		FROM projects WHERE user_id = ? ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var projects []*Project
	for rows.Next() {
		var p Project
		var createdAt string
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &createdAt); err != nil {
			return nil, err
		}
		p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}

// DeleteProject removes a project by ID. Its tasks are removed by the
// ON DELETE CASCADE foreign key. Returns ErrNotFound if no row was deleted.
func (s *SQLiteStore) DeleteProject(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	s.logger.Info("deleted project", "id", id)
	return nil
}

// CountTasks returns the number of tasks under a project.
func (s *SQLiteStore) CountTasks(ctx context.Context, projectID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM tasks WHERE project_id = ?
	`, projectID).Scan(&count)
	return count, err
}

// CountCompletedTasks returns the number of completed tasks under a project.
func (s *SQLiteStore) CountCompletedTasks(ctx context.Context, projectID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM tasks WHERE project_id = ? AND completed = 1
	`, projectID).Scan(&count)
	return count, err
}
