package store

import (
	"time"

	"github.com/manusware/context-manager/internal/models"
	"gorm.io/datatypes"
)

// RecentTaskLimit bounds the task history included in generated context.
const RecentTaskLimit = 5

// CreateTaskInput carries the fields accepted on task creation.
type CreateTaskInput struct {
	Title             string
	Description       string
	TaskType          string
	Priority          string
	Status            string
	ContextUsed       datatypes.JSON
	ManusSessionNotes string
}

// UpdateTaskInput carries a partial task update; nil fields are left
// untouched.
type UpdateTaskInput struct {
	Title             *string
	Description       *string
	TaskType          *string
	Priority          *string
	Status            *string
	ContextUsed       datatypes.JSON
	ManusSessionNotes *string
}

// ListTasks returns a project's tasks, newest first.
func (s *Store) ListTasks(projectID uint) ([]models.Task, error) {
	tasks := []models.Task{}
	err := s.db.Where("project_id = ?", projectID).
		Order("created_at DESC, id DESC").
		Find(&tasks).Error
	return tasks, err
}

// RecentTasks returns up to limit of the project's newest tasks, any status.
func (s *Store) RecentTasks(projectID uint, limit int) ([]models.Task, error) {
	tasks := []models.Task{}
	err := s.db.Where("project_id = ?", projectID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&tasks).Error
	return tasks, err
}

// GetTask returns a single task by id.
func (s *Store) GetTask(id uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, id).Error; err != nil {
		return nil, asStoreErr(err)
	}
	return &task, nil
}

// CreateTask creates a task under the project.
func (s *Store) CreateTask(projectID uint, in CreateTaskInput) (*models.Task, error) {
	if in.Title == "" {
		return nil, &ValidationError{Field: "title"}
	}
	if in.TaskType == "" {
		return nil, &ValidationError{Field: "task_type"}
	}

	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		return nil, asStoreErr(err)
	}

	priority := in.Priority
	if priority == "" {
		priority = models.TaskPriorityMedium
	}
	status := in.Status
	if status == "" {
		status = models.TaskStatusPending
	}

	task := models.Task{
		ProjectID:         projectID,
		Title:             in.Title,
		Description:       in.Description,
		TaskType:          in.TaskType,
		Priority:          priority,
		Status:            status,
		ContextUsed:       in.ContextUsed,
		ManusSessionNotes: in.ManusSessionNotes,
	}
	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask applies a partial update. The first transition to completed
// stamps completed_at; the stamp is never overwritten afterwards.
func (s *Store) UpdateTask(id uint, in UpdateTaskInput) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, id).Error; err != nil {
		return nil, asStoreErr(err)
	}

	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.TaskType != nil {
		task.TaskType = *in.TaskType
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
	}
	if in.Status != nil {
		task.Status = *in.Status
		if *in.Status == models.TaskStatusCompleted && task.CompletedAt == nil {
			now := time.Now().UTC()
			task.CompletedAt = &now
		}
	}
	if in.ContextUsed != nil {
		task.ContextUsed = in.ContextUsed
	}
	if in.ManusSessionNotes != nil {
		task.ManusSessionNotes = *in.ManusSessionNotes
	}

	if err := s.db.Save(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}
