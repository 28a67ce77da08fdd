package models

import (
	"time"

	"gorm.io/datatypes"
)

// Task status values
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

// Task priority values
const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

// DefaultContextType is applied when a context is created without a type.
const DefaultContextType = "general"

// Project is the root aggregate. Deleting a project removes its contexts,
// tasks and repositories.
type Project struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"type:text"`
	GithubRepo  string    `json:"github_repo" gorm:"size:200"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Read-only counts filled in by the store, not persisted.
	TaskCount    int64 `json:"task_count" gorm:"-"`
	ContextCount int64 `json:"context_count" gorm:"-"`

	// One-to-Many Relations
	Contexts     []Context       `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Tasks        []Task          `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Repositories []GitRepository `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// Context is a free-text snapshot of a project's state. At most one context
// per project carries is_current = true.
type Context struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ProjectID   uint      `json:"project_id" gorm:"not null;index:idx_contexts_project_current"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	ContextType string    `json:"context_type" gorm:"size:50;default:general"` // general, feature, bugfix, refactor
	GitCommit   string    `json:"git_commit" gorm:"size:40"`
	CreatedAt   time.Time `json:"created_at"`
	IsCurrent   bool      `json:"is_current" gorm:"default:false;index:idx_contexts_project_current"`
}

// Task represents a unit of work within a project.
type Task struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	ProjectID         uint           `json:"project_id" gorm:"not null;index:idx_tasks_project"`
	Title             string         `json:"title" gorm:"size:200;not null"`
	Description       string         `json:"description" gorm:"type:text"`
	TaskType          string         `json:"task_type" gorm:"size:50;not null"` // feature, bugfix, refactor, documentation
	Priority          string         `json:"priority" gorm:"size:20;default:medium"`
	Status            string         `json:"status" gorm:"size:20;default:pending"`
	CreatedAt         time.Time      `json:"created_at"`
	CompletedAt       *time.Time     `json:"completed_at"`
	ContextUsed       datatypes.JSON `json:"context_used"` // snapshot of the context used for this task
	ManusSessionNotes string         `json:"manus_session_notes" gorm:"type:text"`
}

// GitRepository links a project to a remote git repository. The access token
// is encrypted at rest and never serialized.
type GitRepository struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	ProjectID   uint       `json:"project_id" gorm:"not null;index"`
	RepoURL     string     `json:"repo_url" gorm:"size:500;not null"`
	Branch      string     `json:"branch" gorm:"size:100;default:main"`
	LastSync    *time.Time `json:"last_sync"`
	AccessToken string     `json:"-" gorm:"size:500"`
}
