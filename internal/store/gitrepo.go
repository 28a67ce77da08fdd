package store

import (
	"github.com/manusware/context-manager/internal/models"
)

// CreateRepositoryInput carries the fields accepted on repository creation.
type CreateRepositoryInput struct {
	RepoURL     string
	Branch      string
	AccessToken string
}

// ListRepositories returns the git repositories linked to a project.
func (s *Store) ListRepositories(projectID uint) ([]models.GitRepository, error) {
	repos := []models.GitRepository{}
	err := s.db.Where("project_id = ?", projectID).Find(&repos).Error
	return repos, err
}

// CreateRepository links a git repository to the project. The access token
// is encrypted before it touches the database when a token cipher is
// configured.
func (s *Store) CreateRepository(projectID uint, in CreateRepositoryInput) (*models.GitRepository, error) {
	if in.RepoURL == "" {
		return nil, &ValidationError{Field: "repo_url"}
	}

	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		return nil, asStoreErr(err)
	}

	branch := in.Branch
	if branch == "" {
		branch = "main"
	}

	token := in.AccessToken
	if token != "" && s.tokens != nil {
		encrypted, err := s.tokens.EncryptToken(token)
		if err != nil {
			return nil, err
		}
		token = encrypted
	}

	repo := models.GitRepository{
		ProjectID:   projectID,
		RepoURL:     in.RepoURL,
		Branch:      branch,
		AccessToken: token,
	}
	if err := s.db.Create(&repo).Error; err != nil {
		return nil, err
	}
	return &repo, nil
}

// RepositoryToken returns the decrypted access token for a repository.
// Callers must not serialize the result.
func (s *Store) RepositoryToken(id uint) (string, error) {
	var repo models.GitRepository
	if err := s.db.First(&repo, id).Error; err != nil {
		return "", asStoreErr(err)
	}
	if repo.AccessToken == "" || s.tokens == nil {
		return repo.AccessToken, nil
	}
	return s.tokens.DecryptToken(repo.AccessToken)
}
