package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/manusware/context-manager/internal/models"
	"gorm.io/datatypes"
)

func TestCreateTaskValidation(t *testing.T) {
	s := newTestStore(t)
	project := mustProject(t, s, "Alpha")

	cases := []struct {
		name  string
		in    CreateTaskInput
		field string
	}{
		{"missing title", CreateTaskInput{TaskType: "feature"}, "title"},
		{"missing task_type", CreateTaskInput{Title: "t"}, "task_type"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.CreateTask(project.ID, tc.in)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("CreateTask() error = %v, want ValidationError", err)
			}
			if verr.Field != tc.field {
				t.Errorf("ValidationError.Field = %q, want %q", verr.Field, tc.field)
			}
		})
	}
}

func TestCreateTaskUnknownProject(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateTask(12, CreateTaskInput{Title: "t", TaskType: "feature"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("CreateTask() error = %v, want ErrNotFound", err)
	}
}

func TestCreateTaskDefaults(t *testing.T) {
	s := newTestStore(t)
	project := mustProject(t, s, "Alpha")

	task, err := s.CreateTask(project.ID, CreateTaskInput{Title: "t", TaskType: "feature"})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	if task.Priority != models.TaskPriorityMedium {
		t.Errorf("Priority = %q, want %q", task.Priority, models.TaskPriorityMedium)
	}
	if task.Status != models.TaskStatusPending {
		t.Errorf("Status = %q, want %q", task.Status, models.TaskStatusPending)
	}
	if task.CompletedAt != nil {
		t.Errorf("CompletedAt = %v, want nil", task.CompletedAt)
	}
}

func TestCompleteTaskStampsOnce(t *testing.T) {
	s := newTestStore(t)
	project := mustProject(t, s, "Alpha")

	task, err := s.CreateTask(project.ID, CreateTaskInput{Title: "t", TaskType: "bugfix"})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	completed := models.TaskStatusCompleted
	first, err := s.UpdateTask(task.ID, UpdateTaskInput{Status: &completed})
	if err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}
	if first.CompletedAt == nil {
		t.Fatal("CompletedAt = nil after completion")
	}
	stamp := *first.CompletedAt

	// Re-asserting completed must not move the stamp, even at millisecond
	// resolution.
	again, err := s.UpdateTask(task.ID, UpdateTaskInput{Status: &completed})
	if err != nil {
		t.Fatalf("UpdateTask() second error = %v", err)
	}
	if again.CompletedAt == nil || !again.CompletedAt.Equal(stamp) {
		t.Errorf("CompletedAt changed: %v -> %v", stamp, again.CompletedAt)
	}

	// Other updates leave it alone as well.
	title := "renamed"
	renamed, err := s.UpdateTask(task.ID, UpdateTaskInput{Title: &title})
	if err != nil {
		t.Fatalf("UpdateTask() rename error = %v", err)
	}
	if renamed.CompletedAt == nil || !renamed.CompletedAt.Equal(stamp) {
		t.Errorf("CompletedAt changed on rename: %v -> %v", stamp, renamed.CompletedAt)
	}
}

func TestNonCompletionStatusLeavesStampUnset(t *testing.T) {
	s := newTestStore(t)
	project := mustProject(t, s, "Alpha")

	task, err := s.CreateTask(project.ID, CreateTaskInput{Title: "t", TaskType: "feature"})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	inProgress := models.TaskStatusInProgress
	updated, err := s.UpdateTask(task.ID, UpdateTaskInput{Status: &inProgress})
	if err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}
	if updated.CompletedAt != nil {
		t.Errorf("CompletedAt = %v for in_progress, want nil", updated.CompletedAt)
	}
}

func TestUpdateTaskNotFound(t *testing.T) {
	s := newTestStore(t)

	title := "x"
	if _, err := s.UpdateTask(5, UpdateTaskInput{Title: &title}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateTask(5) error = %v, want ErrNotFound", err)
	}
}

func TestTaskContextUsedRoundTrip(t *testing.T) {
	s := newTestStore(t)
	project := mustProject(t, s, "Alpha")

	snapshot := map[string]interface{}{
		"context_id": float64(3),
		"title":      "deploy notes",
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}

	task, err := s.CreateTask(project.ID, CreateTaskInput{
		Title:       "t",
		TaskType:    "feature",
		ContextUsed: datatypes.JSON(raw),
	})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	reloaded, err := s.GetTask(task.ID)
	if err != nil {
		t.Fatalf("GetTask() error = %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(reloaded.ContextUsed, &got); err != nil {
		t.Fatalf("unmarshal stored context_used: %v", err)
	}
	if got["title"] != snapshot["title"] || got["context_id"] != snapshot["context_id"] {
		t.Errorf("context_used round trip = %v, want %v", got, snapshot)
	}
}

func TestListTasksEmptyIsNotNil(t *testing.T) {
	s := newTestStore(t)
	project := mustProject(t, s, "Alpha")

	tasks, err := s.ListTasks(project.ID)
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if tasks == nil {
		t.Error("ListTasks() = nil for empty project, want empty slice")
	}

	recent, err := s.RecentTasks(project.ID, RecentTaskLimit)
	if err != nil {
		t.Fatalf("RecentTasks() error = %v", err)
	}
	if recent == nil {
		t.Error("RecentTasks() = nil for empty project, want empty slice")
	}
}

func TestRecentTasksLimitAndOrder(t *testing.T) {
	s := newTestStore(t)
	project := mustProject(t, s, "Alpha")

	base := time.Now().Add(-10 * time.Hour)
	var ids []uint
	for i := 0; i < 7; i++ {
		task, err := s.CreateTask(project.ID, CreateTaskInput{
			Title:    fmt.Sprintf("task-%d", i),
			TaskType: "feature",
		})
		if err != nil {
			t.Fatalf("CreateTask(%d) error = %v", i, err)
		}
		backdate(t, s, &models.Task{}, task.ID, base.Add(time.Duration(i)*time.Hour))
		ids = append(ids, task.ID)
	}

	tasks, err := s.RecentTasks(project.ID, RecentTaskLimit)
	if err != nil {
		t.Fatalf("RecentTasks() error = %v", err)
	}
	if len(tasks) != RecentTaskLimit {
		t.Fatalf("RecentTasks() returned %d, want %d", len(tasks), RecentTaskLimit)
	}
	// Newest first: task-6 down to task-2.
	for i, task := range tasks {
		wantID := ids[len(ids)-1-i]
		if task.ID != wantID {
			t.Errorf("tasks[%d].ID = %d, want %d", i, task.ID, wantID)
		}
	}
}
