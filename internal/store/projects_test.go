// ABOUTME: Tests for ProjectStore methods (CRUD and task counts).
// ABOUTME: Uses real SQLite in-memory database for integration testing.

package store

import (
	"context"
	"testing"
)

func TestProjectCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "owner@example.com")

	p := &Project{
		UserID:      u.ID,
		Title:       "launch",
		Description: "ship the thing",
	}
	if err := s.CreateProject(ctx, p); err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if p.ID == "" {
		t.Error("expected ID to be set")
	}

	got, err := s.GetProject(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetProject: %v", err)
	}
	if got.Title != "launch" || got.UserID != u.ID {
		t.Errorf("unexpected project: %+v", got)
	}

	projects, err := s.ListProjectsByUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("ListProjectsByUser: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}

	if err := s.DeleteProject(ctx, p.ID); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	if _, err := s.GetProject(ctx, p.ID); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteProjectNotFound(t *testing.T) {
	s := newTestStore(t)

	if err := s.DeleteProject(context.Background(), "missing"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListProjectsByUserScoped(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u1 := createTestUser(t, s, "u1@example.com")
	u2 := createTestUser(t, s, "u2@example.com")
	createTestProject(t, s, u1.ID, "mine")
	createTestProject(t, s, u2.ID, "theirs")

	projects, err := s.ListProjectsByUser(ctx, u1.ID)
	if err != nil {
		t.Fatalf("ListProjectsByUser: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}
	if projects[0].Title != "mine" {
		t.Errorf("unexpected project: %s", projects[0].Title)
	}
}

func TestTaskCounts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "counter@example.com")
	p := createTestProject(t, s, u.ID, "metrics")

	for i := 0; i < 3; i++ {
		task := &Task{ProjectID: p.ID, Title: "work"}
		if i == 0 {
			task.Completed = true
		}
		if err := s.CreateTask(ctx, task); err != nil {
			t.Fatalf("CreateTask: %v", err)
		}
	}

	total, err := s.CountTasks(ctx, p.ID)
	if err != nil {
		t.Fatalf("CountTasks: %v", err)
	}
	if total != 3 {
		t.Errorf("expected 3 tasks, got %d", total)
	}

	completed, err := s.CountCompletedTasks(ctx, p.ID)
	if err != nil {
		t.Fatalf("CountCompletedTasks: %v", err)
	}
	if completed != 1 {
		t.Errorf("expected 1 completed task, got %d", completed)
	}
}

func TestTaskCountsEmptyProject(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "empty@example.com")
	p := createTestProject(t, s, u.ID, "empty")

	total, err := s.CountTasks(ctx, p.ID)
	if err != nil {
		t.Fatalf("CountTasks: %v", err)
	}
	if total != 0 {
		t.Errorf("expected 0 tasks, got %d", total)
	}
}
