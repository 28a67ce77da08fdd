package store

import (
	"github.com/manusware/context-manager/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateContextInput carries the fields accepted on context creation.
// IsCurrent defaults to true when nil.
type CreateContextInput struct {
	Title       string
	Content     string
	ContextType string
	GitCommit   string
	IsCurrent   *bool
}

// UpdateContextInput carries a partial context update; nil fields are left
// untouched.
type UpdateContextInput struct {
	Title       *string
	Content     *string
	ContextType *string
	GitCommit   *string
	IsCurrent   *bool
}

// ListContexts returns a project's contexts, newest first.
func (s *Store) ListContexts(projectID uint) ([]models.Context, error) {
	contexts := []models.Context{}
	err := s.db.Where("project_id = ?", projectID).
		Order("created_at DESC, id DESC").
		Find(&contexts).Error
	return contexts, err
}

// GetCurrentContext returns the single context flagged current for the
// project, or ErrNotFound when none is.
func (s *Store) GetCurrentContext(projectID uint) (*models.Context, error) {
	var ctx models.Context
	err := s.db.Where("project_id = ? AND is_current = ?", projectID, true).
		First(&ctx).Error
	if err != nil {
		return nil, asStoreErr(err)
	}
	return &ctx, nil
}

// CreateContext creates a context for the project. When the new context is
// current (the default), every other context of the project is demoted in
// the same transaction.
func (s *Store) CreateContext(projectID uint, in CreateContextInput) (*models.Context, error) {
	if in.Title == "" {
		return nil, &ValidationError{Field: "title"}
	}
	if in.Content == "" {
		return nil, &ValidationError{Field: "content"}
	}

	contextType := in.ContextType
	if contextType == "" {
		contextType = models.DefaultContextType
	}
	isCurrent := true
	if in.IsCurrent != nil {
		isCurrent = *in.IsCurrent
	}

	ctx := models.Context{
		ProjectID:   projectID,
		Title:       in.Title,
		Content:     in.Content,
		ContextType: contextType,
		GitCommit:   in.GitCommit,
		IsCurrent:   isCurrent,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Locking the project row serializes concurrent writers touching
		// the same project's current-context flag. Without it, two
		// READ COMMITTED transactions can each demote the other's
		// not-yet-visible insert and both commit a current context.
		var project models.Project
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&project, projectID).Error; err != nil {
			return asStoreErr(err)
		}
		if isCurrent {
			if err := demoteContexts(tx, projectID, 0); err != nil {
				return err
			}
		}
		return tx.Create(&ctx).Error
	})
	if err != nil {
		return nil, err
	}
	return &ctx, nil
}

// UpdateContext applies a partial update. Promoting a context to current
// demotes its siblings in the same transaction.
func (s *Store) UpdateContext(id uint, in UpdateContextInput) (*models.Context, error) {
	var ctx models.Context
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ctx, id).Error; err != nil {
			return asStoreErr(err)
		}

		if in.Title != nil {
			ctx.Title = *in.Title
		}
		if in.Content != nil {
			ctx.Content = *in.Content
		}
		if in.ContextType != nil {
			ctx.ContextType = *in.ContextType
		}
		if in.GitCommit != nil {
			ctx.GitCommit = *in.GitCommit
		}
		if in.IsCurrent != nil {
			if *in.IsCurrent {
				// Same project-row lock as CreateContext, so promotions
				// and creations on one project serialize against each
				// other.
				var project models.Project
				if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
					First(&project, ctx.ProjectID).Error; err != nil {
					return asStoreErr(err)
				}
				if err := demoteContexts(tx, ctx.ProjectID, ctx.ID); err != nil {
					return err
				}
			}
			ctx.IsCurrent = *in.IsCurrent
		}

		return tx.Save(&ctx).Error
	})
	if err != nil {
		return nil, err
	}
	return &ctx, nil
}

// demoteContexts clears is_current on every context of the project except
// the one with the given id (0 excludes nothing).
func demoteContexts(tx *gorm.DB, projectID, exceptID uint) error {
	return tx.Model(&models.Context{}).
		Where("project_id = ? AND is_current = ? AND id <> ?", projectID, true, exceptID).
		Update("is_current", false).Error
}
