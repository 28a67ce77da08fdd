package client

import (
	"fmt"
	"net/http"

	"github.com/manusware/context-manager/internal/models"
	"github.com/manusware/context-manager/internal/store"
)

// GenerateContextResponse mirrors the generation endpoint payload.
type GenerateContextResponse struct {
	Context        string          `json:"context"`
	Project        *models.Project `json:"project"`
	CurrentContext *models.Context `json:"current_context"`
	RecentTasks    []models.Task   `json:"recent_tasks"`
}

// ListProjects retrieves all projects.
func (c *Client) ListProjects() ([]models.Project, error) {
	var projects []models.Project
	err := c.get("/projects", &projects)
	return projects, err
}

// CreateProject creates a new project.
func (c *Client) CreateProject(name, description, githubRepo string) (*models.Project, error) {
	in := map[string]string{
		"name":        name,
		"description": description,
		"github_repo": githubRepo,
	}
	var project models.Project
	if err := c.post("/projects", in, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// GetProject retrieves a single project.
func (c *Client) GetProject(id uint) (*models.Project, error) {
	var project models.Project
	if err := c.get(fmt.Sprintf("/projects/%d", id), &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject deletes a project.
func (c *Client) DeleteProject(id uint) error {
	_, err := c.makeRequest(http.MethodDelete, fmt.Sprintf("/projects/%d", id), nil)
	return err
}

// ListContexts retrieves a project's contexts, newest first.
func (c *Client) ListContexts(projectID uint) ([]models.Context, error) {
	var contexts []models.Context
	err := c.get(fmt.Sprintf("/projects/%d/contexts", projectID), &contexts)
	return contexts, err
}

// CurrentContext retrieves the context flagged current for a project.
func (c *Client) CurrentContext(projectID uint) (*models.Context, error) {
	var ctx models.Context
	if err := c.get(fmt.Sprintf("/projects/%d/contexts/current", projectID), &ctx); err != nil {
		return nil, err
	}
	return &ctx, nil
}

// CreateContext creates a context for a project.
func (c *Client) CreateContext(projectID uint, title, content, contextType, gitCommit string) (*models.Context, error) {
	in := map[string]string{
		"title":        title,
		"content":      content,
		"context_type": contextType,
		"git_commit":   gitCommit,
	}
	var ctx models.Context
	if err := c.post(fmt.Sprintf("/projects/%d/contexts", projectID), in, &ctx); err != nil {
		return nil, err
	}
	return &ctx, nil
}

// ListTasks retrieves a project's tasks, newest first.
func (c *Client) ListTasks(projectID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := c.get(fmt.Sprintf("/projects/%d/tasks", projectID), &tasks)
	return tasks, err
}

// CreateTask creates a task under a project.
func (c *Client) CreateTask(projectID uint, title, taskType, description, priority string) (*models.Task, error) {
	in := map[string]string{
		"title":       title,
		"task_type":   taskType,
		"description": description,
	}
	if priority != "" {
		in["priority"] = priority
	}
	var task models.Task
	if err := c.post(fmt.Sprintf("/projects/%d/tasks", projectID), in, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CompleteTask marks a task completed.
func (c *Client) CompleteTask(id uint) (*models.Task, error) {
	in := map[string]string{"status": models.TaskStatusCompleted}
	var task models.Task
	if err := c.put(fmt.Sprintf("/tasks/%d", id), in, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// GenerateContext renders the Manus context document for a project.
func (c *Client) GenerateContext(projectID uint, taskType, taskDescription string) (*GenerateContextResponse, error) {
	in := map[string]string{
		"task_type":        taskType,
		"task_description": taskDescription,
	}
	var resp GenerateContextResponse
	if err := c.post(fmt.Sprintf("/projects/%d/generate-context", projectID), in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DashboardStats retrieves the dashboard rollup.
func (c *Client) DashboardStats() (*store.DashboardStats, error) {
	var stats store.DashboardStats
	if err := c.get("/dashboard/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
