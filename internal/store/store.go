// ABOUTME: Store interface and data types for taskmanager persistence
// ABOUTME: Defines User, Project, Task structs and the Store interface for database operations

package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when trying to create a user with an existing email
var ErrEmailExists = errors.New("email already exists")

// User represents a registered account. Every project is owned by exactly one user.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
}

// Project groups tasks under a single owning user. The owner is set at
// creation and never changes.
type Project struct {
	ID          string
	UserID      string
	Title       string
	Description string
	CreatedAt   time.Time
}

// Task belongs to exactly one project. A task's effective owner is its
// project's owner.
type Task struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	DueDate     *time.Time
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskFilter narrows a task search. Zero-value fields match everything:
// empty strings mean no title/description filter, nil pointers mean no
// completed/due-date filter. Title and description match as substrings;
// the due-date range is inclusive on both ends.
type TaskFilter struct {
	Title       string
	Description string
	Completed   *bool
	DueFrom     *time.Time
	DueTo       *time.Time
}

// UserStore defines user persistence operations
type UserStore interface {
	CreateUser(ctx context.Context, user *User) error
	GetUser(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}

// ProjectStore defines project persistence operations
type ProjectStore interface {
	CreateProject(ctx context.Context, project *Project) error
	GetProject(ctx context.Context, id string) (*Project, error)
	ListProjectsByUser(ctx context.Context, userID string) ([]*Project, error)
	DeleteProject(ctx context.Context, id string) error
	CountTasks(ctx context.Context, projectID string) (int, error)
	CountCompletedTasks(ctx context.Context, projectID string) (int, error)
}

// TaskStore defines task persistence operations
type TaskStore interface {
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id string) (*Task, error)
	ListTasksByProject(ctx context.Context, projectID string) ([]*Task, error)
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, id string) error
	SearchTasks(ctx context.Context, projectID string, filter TaskFilter) ([]*Task, error)
}

// Store combines all persistence interfaces
type Store interface {
	UserStore
	ProjectStore
	TaskStore

	// Close releases any resources held by the store
	Close() error
}
