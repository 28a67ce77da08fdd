// Package generator renders the Manus task-context document: a Markdown
// block assembling a project's current context and recent task history for
// an external AI assistant.
package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/manusware/context-manager/internal/models"
)

// DefaultTaskType is used when the caller supplies no task type.
const DefaultTaskType = "general"

// Input is everything Render needs. CurrentContext may be nil and
// RecentTasks may be empty; the corresponding sections are then omitted.
// RecentTasks must already be ordered newest first.
type Input struct {
	Project         models.Project
	CurrentContext  *models.Context
	RecentTasks     []models.Task
	TaskType        string
	TaskDescription string
	GeneratedAt     time.Time
}

// Render produces the Manus context document. It is deterministic for a
// fixed Input.
func Render(in Input) string {
	taskType := in.TaskType
	if taskType == "" {
		taskType = DefaultTaskType
	}

	var b strings.Builder

	b.WriteString("# Manus Task Context\n\n")
	b.WriteString("## Project Information\n")
	fmt.Fprintf(&b, "- **Project:** %s\n", in.Project.Name)
	fmt.Fprintf(&b, "- **Description:** %s\n", in.Project.Description)
	fmt.Fprintf(&b, "- **Task Type:** %s\n", taskType)
	fmt.Fprintf(&b, "- **Task Description:** %s\n", in.TaskDescription)
	fmt.Fprintf(&b, "- **Generated:** %s\n", in.GeneratedAt.UTC().Format(time.RFC3339))

	if in.CurrentContext != nil {
		b.WriteString("\n## Current Project Context\n")
		b.WriteString("\n### Current Context\n")
		b.WriteString(in.CurrentContext.Content)
		b.WriteString("\n\n### Context Type\n")
		b.WriteString(in.CurrentContext.ContextType)
		b.WriteString("\n")
	}

	if len(in.RecentTasks) > 0 {
		b.WriteString("\n## Recent Task History\n")
		for _, task := range in.RecentTasks {
			fmt.Fprintf(&b, "\n### %s (%s)\n", task.Title, task.TaskType)
			fmt.Fprintf(&b, "- **Status:** %s\n", task.Status)
			fmt.Fprintf(&b, "- **Priority:** %s\n", task.Priority)
			fmt.Fprintf(&b, "- **Created:** %s\n", task.CreatedAt.Format("2006-01-02"))
			fmt.Fprintf(&b, "- **Description:** %s\n", task.Description)
		}
	}

	b.WriteString("\n## Instructions for Manus\n")
	fmt.Fprintf(&b, "Please help me with: **%s**\n\n", in.TaskDescription)
	fmt.Fprintf(&b, "This is a %s task for the %s project. ", taskType, in.Project.Name)
	b.WriteString("Use the context above to understand the current project state and provide appropriate assistance.\n\n")
	b.WriteString("Focus on maintaining consistency with existing project structure and recent development patterns.\n")

	return b.String()
}
