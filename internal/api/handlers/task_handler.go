package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/manusware/context-manager/internal/store"
	"gorm.io/datatypes"
)

// CreateTaskInput DTO for creating a new task. The project id comes from
// the URL path, matching the list route.
type CreateTaskInput struct {
	Title             string         `json:"title" binding:"required"`
	TaskType          string         `json:"task_type" binding:"required"`
	Description       string         `json:"description"`
	Priority          string         `json:"priority"`
	Status            string         `json:"status"`
	ContextUsed       datatypes.JSON `json:"context_used"`
	ManusSessionNotes string         `json:"manus_session_notes"`
}

// UpdateTaskInput DTO for a partial task update
type UpdateTaskInput struct {
	Title             *string        `json:"title"`
	Description       *string        `json:"description"`
	TaskType          *string        `json:"task_type"`
	Priority          *string        `json:"priority"`
	Status            *string        `json:"status"`
	ContextUsed       datatypes.JSON `json:"context_used"`
	ManusSessionNotes *string        `json:"manus_session_notes"`
}

// ListTasks retrieves all tasks for a project, newest first.
func (h *Handler) ListTasks(c *gin.Context) {
	projectID, ok := paramID(c)
	if !ok {
		return
	}

	tasks, err := h.store.ListTasks(projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask creates a new task under a project.
func (h *Handler) CreateTask(c *gin.Context) {
	projectID, ok := paramID(c)
	if !ok {
		return
	}

	var input CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.store.CreateTask(projectID, store.CreateTaskInput{
		Title:             input.Title,
		TaskType:          input.TaskType,
		Description:       input.Description,
		Priority:          input.Priority,
		Status:            input.Status,
		ContextUsed:       input.ContextUsed,
		ManusSessionNotes: input.ManusSessionNotes,
	})
	if err != nil {
		respondError(c, err, "Project not found", "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask applies a partial update to a task.
func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input UpdateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.store.UpdateTask(id, store.UpdateTaskInput{
		Title:             input.Title,
		Description:       input.Description,
		TaskType:          input.TaskType,
		Priority:          input.Priority,
		Status:            input.Status,
		ContextUsed:       input.ContextUsed,
		ManusSessionNotes: input.ManusSessionNotes,
	})
	if err != nil {
		respondError(c, err, "Task not found", "Failed to update task")
		return
	}

	c.JSON(http.StatusOK, task)
}
