package store

import (
	"testing"

	"github.com/manusware/context-manager/internal/models"
)

func TestDashboardStatsEmpty(t *testing.T) {
	s := newTestStore(t)

	stats, err := s.GetDashboardStats()
	if err != nil {
		t.Fatalf("GetDashboardStats() error = %v", err)
	}

	if stats.TotalProjects != 0 || stats.TotalTasks != 0 || stats.TotalContexts != 0 {
		t.Errorf("empty store counts = %+v, want zeros", stats)
	}
	if stats.CompletionRate != 0 {
		t.Errorf("CompletionRate = %v with zero tasks, want exactly 0", stats.CompletionRate)
	}
}

func TestDashboardStatsRollup(t *testing.T) {
	s := newTestStore(t)
	project := mustProject(t, s, "Alpha")

	if _, err := s.CreateContext(project.ID, CreateContextInput{Title: "t", Content: "c"}); err != nil {
		t.Fatalf("CreateContext() error = %v", err)
	}

	completed := models.TaskStatusCompleted
	for i := 0; i < 4; i++ {
		task, err := s.CreateTask(project.ID, CreateTaskInput{Title: "t", TaskType: "feature"})
		if err != nil {
			t.Fatalf("CreateTask() error = %v", err)
		}
		if i < 3 {
			if _, err := s.UpdateTask(task.ID, UpdateTaskInput{Status: &completed}); err != nil {
				t.Fatalf("UpdateTask() error = %v", err)
			}
		}
	}

	stats, err := s.GetDashboardStats()
	if err != nil {
		t.Fatalf("GetDashboardStats() error = %v", err)
	}

	if stats.TotalProjects != 1 {
		t.Errorf("TotalProjects = %d, want 1", stats.TotalProjects)
	}
	if stats.TotalContexts != 1 {
		t.Errorf("TotalContexts = %d, want 1", stats.TotalContexts)
	}
	if stats.TotalTasks != 4 {
		t.Errorf("TotalTasks = %d, want 4", stats.TotalTasks)
	}
	if stats.CompletedTasks != 3 {
		t.Errorf("CompletedTasks = %d, want 3", stats.CompletedTasks)
	}
	if stats.PendingTasks != 1 {
		t.Errorf("PendingTasks = %d, want 1", stats.PendingTasks)
	}
	if stats.CompletionRate != 75 {
		t.Errorf("CompletionRate = %v, want 75", stats.CompletionRate)
	}
}

func TestDashboardStatsAllCompleted(t *testing.T) {
	s := newTestStore(t)
	project := mustProject(t, s, "Alpha")

	completed := models.TaskStatusCompleted
	for i := 0; i < 2; i++ {
		task, err := s.CreateTask(project.ID, CreateTaskInput{Title: "t", TaskType: "feature"})
		if err != nil {
			t.Fatalf("CreateTask() error = %v", err)
		}
		if _, err := s.UpdateTask(task.ID, UpdateTaskInput{Status: &completed}); err != nil {
			t.Fatalf("UpdateTask() error = %v", err)
		}
	}

	stats, err := s.GetDashboardStats()
	if err != nil {
		t.Fatalf("GetDashboardStats() error = %v", err)
	}
	if stats.CompletionRate != 100 {
		t.Errorf("CompletionRate = %v, want 100", stats.CompletionRate)
	}
	if stats.PendingTasks != 0 {
		t.Errorf("PendingTasks = %d, want 0", stats.PendingTasks)
	}
}
