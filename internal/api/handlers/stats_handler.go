package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns the read-only rollup over all entities.
func (h *Handler) GetDashboardStats(c *gin.Context) {
	stats, err := h.store.GetDashboardStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
