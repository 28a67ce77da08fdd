package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/manusware/context-manager/internal/store"
)

// CreateContextInput DTO for creating a new context
type CreateContextInput struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	ContextType string `json:"context_type"`
	GitCommit   string `json:"git_commit"`
	IsCurrent   *bool  `json:"is_current"`
}

// UpdateContextInput DTO for a partial context update
type UpdateContextInput struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	ContextType *string `json:"context_type"`
	GitCommit   *string `json:"git_commit"`
	IsCurrent   *bool   `json:"is_current"`
}

// ListContexts retrieves all contexts for a project, newest first.
func (h *Handler) ListContexts(c *gin.Context) {
	projectID, ok := paramID(c)
	if !ok {
		return
	}

	contexts, err := h.store.ListContexts(projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve contexts"})
		return
	}

	c.JSON(http.StatusOK, contexts)
}

// GetCurrentContext retrieves the context flagged current for a project.
func (h *Handler) GetCurrentContext(c *gin.Context) {
	projectID, ok := paramID(c)
	if !ok {
		return
	}

	ctx, err := h.store.GetCurrentContext(projectID)
	if err != nil {
		respondError(c, err, "No current context found", "Failed to retrieve current context")
		return
	}

	c.JSON(http.StatusOK, ctx)
}

// CreateContext creates a new context for a project.
func (h *Handler) CreateContext(c *gin.Context) {
	projectID, ok := paramID(c)
	if !ok {
		return
	}

	var input CreateContextInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, err := h.store.CreateContext(projectID, store.CreateContextInput{
		Title:       input.Title,
		Content:     input.Content,
		ContextType: input.ContextType,
		GitCommit:   input.GitCommit,
		IsCurrent:   input.IsCurrent,
	})
	if err != nil {
		respondError(c, err, "Project not found", "Failed to create context")
		return
	}

	c.JSON(http.StatusCreated, ctx)
}

// UpdateContext applies a partial update to a context.
func (h *Handler) UpdateContext(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input UpdateContextInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, err := h.store.UpdateContext(id, store.UpdateContextInput{
		Title:       input.Title,
		Content:     input.Content,
		ContextType: input.ContextType,
		GitCommit:   input.GitCommit,
		IsCurrent:   input.IsCurrent,
	})
	if err != nil {
		respondError(c, err, "Context not found", "Failed to update context")
		return
	}

	c.JSON(http.StatusOK, ctx)
}
