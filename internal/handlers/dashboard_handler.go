package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jobpilot/jobpilot/internal/services"
)

type DashboardHandler struct {
	Apps *services.ApplicationService
}

func NewDashboardHandler(apps *services.ApplicationService) *DashboardHandler {
	return &DashboardHandler{Apps: apps}
}

// Overview is GET /dashboard: per-column counts, active sprints, upcoming
// interviews and the recent activity feed.
func (h *DashboardHandler) Overview(c *gin.Context) {
	stats, err := h.Apps.Dashboard(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// HealthCheck is GET /health.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
