package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/manusware/context-manager/internal/store"
)

// CreateProjectInput DTO for creating a new project
type CreateProjectInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	GithubRepo  string `json:"github_repo"`
}

// UpdateProjectInput DTO for a partial project update
type UpdateProjectInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	GithubRepo  *string `json:"github_repo"`
}

// ListProjects retrieves all projects.
func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.store.ListProjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// CreateProject creates a new project.
func (h *Handler) CreateProject(c *gin.Context) {
	var input CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.store.CreateProject(store.CreateProjectInput{
		Name:        input.Name,
		Description: input.Description,
		GithubRepo:  input.GithubRepo,
	})
	if err != nil {
		respondError(c, err, "Project not found", "Failed to create project")
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetProject retrieves a single project by id.
func (h *Handler) GetProject(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	project, err := h.store.GetProject(id)
	if err != nil {
		respondError(c, err, "Project not found", "Failed to retrieve project")
		return
	}

	c.JSON(http.StatusOK, project)
}

// UpdateProject applies a partial update to a project.
func (h *Handler) UpdateProject(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input UpdateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.store.UpdateProject(id, store.UpdateProjectInput{
		Name:        input.Name,
		Description: input.Description,
		GithubRepo:  input.GithubRepo,
	})
	if err != nil {
		respondError(c, err, "Project not found", "Failed to update project")
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject deletes a project and everything it owns.
func (h *Handler) DeleteProject(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteProject(id); err != nil {
		respondError(c, err, "Project not found", "Failed to delete project")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
