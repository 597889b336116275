// ABOUTME: Tests for TaskStore methods (CRUD and filtered search).
// ABOUTME: Uses real SQLite in-memory database for integration testing.

package store

import (
	"context"
	"testing"
	"time"
)

func TestTaskCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "tasker@example.com")
	p := createTestProject(t, s, u.ID, "inbox")

	task := &Task{
		ProjectID:   p.ID,
		Title:       "write tests",
		Description: "store layer first",
	}
	if err := s.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.ID == "" {
		t.Error("expected ID to be set")
	}

	got, err := s.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.Title != "write tests" {
		t.Errorf("unexpected title: %s", got.Title)
	}
	if got.Completed {
		t.Error("expected new task to be incomplete")
	}
	if got.DueDate != nil {
		t.Error("expected nil due date")
	}

	got.Completed = true
	got.Description = "done"
	if err := s.UpdateTask(ctx, got); err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}

	got, err = s.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if !got.Completed || got.Description != "done" {
		t.Errorf("update not persisted: %+v", got)
	}

	if err := s.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if _, err := s.GetTask(ctx, task.ID); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTaskDueDateRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "due@example.com")
	p := createTestProject(t, s, u.ID, "deadlines")

	due := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)
	task := &Task{ProjectID: p.ID, Title: "future task", DueDate: &due}
	if err := s.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	got, err := s.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.DueDate == nil {
		t.Fatal("expected due date to survive round trip")
	}
	if !got.DueDate.Equal(due) {
		t.Errorf("expected due date %v, got %v", due, got.DueDate)
	}
}

func TestUpdateTaskNotFound(t *testing.T) {
	s := newTestStore(t)

	task := &Task{ID: "missing", Title: "ghost"}
	if err := s.UpdateTask(context.Background(), task); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSearchTasks(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "search@example.com")
	p := createTestProject(t, s, u.ID, "search")

	nearDue := time.Now().UTC().Add(24 * time.Hour)
	farDue := time.Now().UTC().Add(30 * 24 * time.Hour)

	tasks := []*Task{
		{ProjectID: p.ID, Title: "write spec", Description: "draft the document", DueDate: &nearDue},
		{ProjectID: p.ID, Title: "review spec", Description: "second pass", DueDate: &farDue, Completed: true},
		{ProjectID: p.ID, Title: "ship release", Description: "cut v1"},
	}
	for _, task := range tasks {
		if err := s.CreateTask(ctx, task); err != nil {
			t.Fatalf("CreateTask: %v", err)
		}
	}

	// Title substring
	found, err := s.SearchTasks(ctx, p.ID, TaskFilter{Title: "spec"})
	if err != nil {
		t.Fatalf("SearchTasks: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 tasks for title filter, got %d", len(found))
	}

	// Description substring
	found, err = s.SearchTasks(ctx, p.ID, TaskFilter{Description: "draft"})
	if err != nil {
		t.Fatalf("SearchTasks: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected 1 task for description filter, got %d", len(found))
	}

	// Completed flag
	completed := true
	found, err = s.SearchTasks(ctx, p.ID, TaskFilter{Completed: &completed})
	if err != nil {
		t.Fatalf("SearchTasks: %v", err)
	}
	if len(found) != 1 || found[0].Title != "review spec" {
		t.Fatalf("unexpected completed search result: %+v", found)
	}

	// Inclusive due-date range catching only the near task
	from := time.Now().UTC()
	to := time.Now().UTC().Add(48 * time.Hour)
	found, err = s.SearchTasks(ctx, p.ID, TaskFilter{DueFrom: &from, DueTo: &to})
	if err != nil {
		t.Fatalf("SearchTasks: %v", err)
	}
	if len(found) != 1 || found[0].Title != "write spec" {
		t.Fatalf("unexpected due-range search result: %+v", found)
	}

	// No filters matches everything
	found, err = s.SearchTasks(ctx, p.ID, TaskFilter{})
	if err != nil {
		t.Fatalf("SearchTasks: %v", err)
	}
	if len(found) != 3 {
		t.Fatalf("expected 3 tasks with empty filter, got %d", len(found))
	}
}

func TestSearchTasksScopedToProject(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "scoped@example.com")
	p1 := createTestProject(t, s, u.ID, "one")
	p2 := createTestProject(t, s, u.ID, "two")

	if err := s.CreateTask(ctx, &Task{ProjectID: p1.ID, Title: "shared name"}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if err := s.CreateTask(ctx, &Task{ProjectID: p2.ID, Title: "shared name"}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	found, err := s.SearchTasks(ctx, p1.ID, TaskFilter{Title: "shared"})
	if err != nil {
		t.Fatalf("SearchTasks: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected search scoped to project, got %d tasks", len(found))
	}
	if found[0].ProjectID != p1.ID {
		t.Errorf("task from wrong project: %s", found[0].ProjectID)
	}
}
