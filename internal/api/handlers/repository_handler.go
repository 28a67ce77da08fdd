package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/manusware/context-manager/internal/store"
)

// CreateRepositoryInput DTO for linking a git repository to a project. The
// access token is accepted here but never appears in any response.
type CreateRepositoryInput struct {
	RepoURL     string `json:"repo_url" binding:"required"`
	Branch      string `json:"branch"`
	AccessToken string `json:"access_token"`
}

// ListRepositories retrieves the git repositories linked to a project.
func (h *Handler) ListRepositories(c *gin.Context) {
	projectID, ok := paramID(c)
	if !ok {
		return
	}

	repos, err := h.store.ListRepositories(projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve repositories"})
		return
	}

	c.JSON(http.StatusOK, repos)
}

// CreateRepository links a git repository to a project.
func (h *Handler) CreateRepository(c *gin.Context) {
	projectID, ok := paramID(c)
	if !ok {
		return
	}

	var input CreateRepositoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	repo, err := h.store.CreateRepository(projectID, store.CreateRepositoryInput{
		RepoURL:     input.RepoURL,
		Branch:      input.Branch,
		AccessToken: input.AccessToken,
	})
	if err != nil {
		respondError(c, err, "Project not found", "Failed to create repository")
		return
	}

	c.JSON(http.StatusCreated, repo)
}
