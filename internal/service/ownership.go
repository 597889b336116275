// ABOUTME: Shared ownership-resolution helpers for project and task workflows
// ABOUTME: Every mutation and read is gated through one of these predicates

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ayoubater23/taskmanager-backend/internal/store"
)

// ProjectLookup resolves a project by id.
type ProjectLookup interface {
	GetProject(ctx context.Context, id string) (*store.Project, error)
}

// ownedProject resolves a project and verifies the requesting user owns it.
// Returns ErrNotFound if the project doesn't exist and ErrAccessDenied if it
// belongs to someone else. Both workflows share this predicate so the
// ownership-chain invariant is checked in exactly one place.
func ownedProject(ctx context.Context, projects ProjectLookup, projectID, userID string) (*store.Project, error) {
	project, err := projects.GetProject(ctx, projectID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading project: %w", err)
	}
	if project.UserID != userID {
		return nil, ErrAccessDenied
	}
	return project, nil
}
