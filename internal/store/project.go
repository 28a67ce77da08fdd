package store

import (
	"github.com/manusware/context-manager/internal/models"
	"gorm.io/gorm"
)

// CreateProjectInput carries the fields accepted on project creation.
type CreateProjectInput struct {
	Name        string
	Description string
	GithubRepo  string
}

// UpdateProjectInput carries a partial project update; nil fields are left
// untouched.
type UpdateProjectInput struct {
	Name        *string
	Description *string
	GithubRepo  *string
}

// ListProjects returns all projects with their task and context counts.
func (s *Store) ListProjects() ([]models.Project, error) {
	projects := []models.Project{}
	if err := s.db.Find(&projects).Error; err != nil {
		return nil, err
	}
	for i := range projects {
		if err := s.fillCounts(&projects[i]); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

// GetProject returns a single project by id.
func (s *Store) GetProject(id uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		return nil, asStoreErr(err)
	}
	if err := s.fillCounts(&project); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject creates a new project.
func (s *Store) CreateProject(in CreateProjectInput) (*models.Project, error) {
	if in.Name == "" {
		return nil, &ValidationError{Field: "name"}
	}

	project := models.Project{
		Name:        in.Name,
		Description: in.Description,
		GithubRepo:  in.GithubRepo,
	}
	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject applies a partial update. updated_at is refreshed on save.
func (s *Store) UpdateProject(id uint, in UpdateProjectInput) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		return nil, asStoreErr(err)
	}

	if in.Name != nil {
		project.Name = *in.Name
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.GithubRepo != nil {
		project.GithubRepo = *in.GithubRepo
	}

	if err := s.db.Save(&project).Error; err != nil {
		return nil, err
	}
	if err := s.fillCounts(&project); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject deletes a project and cascades to its contexts, tasks and
// repositories in one transaction.
func (s *Store) DeleteProject(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, id).Error; err != nil {
			return asStoreErr(err)
		}

		if err := tx.Where("project_id = ?", id).Delete(&models.Context{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.GitRepository{}).Error; err != nil {
			return err
		}
		return tx.Delete(&project).Error
	})
}

func (s *Store) fillCounts(project *models.Project) error {
	if err := s.db.Model(&models.Task{}).Where("project_id = ?", project.ID).Count(&project.TaskCount).Error; err != nil {
		return err
	}
	return s.db.Model(&models.Context{}).Where("project_id = ?", project.ID).Count(&project.ContextCount).Error
}
