package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/manusware/context-manager/internal/generator"
	"github.com/manusware/context-manager/internal/models"
	"github.com/manusware/context-manager/internal/store"
)

// GenerateContextInput DTO for the generation endpoint. Both fields are
// optional; task_type defaults to "general".
type GenerateContextInput struct {
	TaskType        string `json:"task_type"`
	TaskDescription string `json:"task_description"`
}

// GenerateContextResponse carries the rendered text plus the raw data it
// was built from, so consumers can reprocess the structured form.
type GenerateContextResponse struct {
	Context        string          `json:"context"`
	Project        *models.Project `json:"project"`
	CurrentContext *models.Context `json:"current_context"`
	RecentTasks    []models.Task   `json:"recent_tasks"`
}

// GenerateContext assembles the Manus context document for a project.
func (h *Handler) GenerateContext(c *gin.Context) {
	projectID, ok := paramID(c)
	if !ok {
		return
	}

	// Both fields are optional and an absent or empty body falls back to
	// defaults, but a malformed body is still a client error.
	var input GenerateContextInput
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.store.GetProject(projectID)
	if err != nil {
		respondError(c, err, "Project not found", "Failed to retrieve project")
		return
	}

	currentContext, err := h.store.GetCurrentContext(projectID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve current context"})
		return
	}

	recentTasks, err := h.store.RecentTasks(projectID, store.RecentTaskLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recent tasks"})
		return
	}

	text := generator.Render(generator.Input{
		Project:         *project,
		CurrentContext:  currentContext,
		RecentTasks:     recentTasks,
		TaskType:        input.TaskType,
		TaskDescription: input.TaskDescription,
		GeneratedAt:     time.Now(),
	})

	c.JSON(http.StatusOK, GenerateContextResponse{
		Context:        text,
		Project:        project,
		CurrentContext: currentContext,
		RecentTasks:    recentTasks,
	})
}
