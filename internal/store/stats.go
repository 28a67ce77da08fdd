package store

import (
	"github.com/manusware/context-manager/internal/models"
)

// DashboardStats is the read-only rollup over all stored entities.
type DashboardStats struct {
	TotalProjects  int64   `json:"total_projects"`
	TotalTasks     int64   `json:"total_tasks"`
	TotalContexts  int64   `json:"total_contexts"`
	CompletedTasks int64   `json:"completed_tasks"`
	PendingTasks   int64   `json:"pending_tasks"`
	CompletionRate float64 `json:"completion_rate"`
}

// GetDashboardStats computes the dashboard rollup. The completion rate is 0
// when no tasks exist.
func (s *Store) GetDashboardStats() (*DashboardStats, error) {
	var stats DashboardStats

	if err := s.db.Model(&models.Project{}).Count(&stats.TotalProjects).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Task{}).Count(&stats.TotalTasks).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Context{}).Count(&stats.TotalContexts).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Task{}).Where("status = ?", models.TaskStatusCompleted).
		Count(&stats.CompletedTasks).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Task{}).Where("status = ?", models.TaskStatusPending).
		Count(&stats.PendingTasks).Error; err != nil {
		return nil, err
	}

	if stats.TotalTasks > 0 {
		stats.CompletionRate = float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100
	}

	return &stats, nil
}
