package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jobpilot/jobpilot/internal/dtos"
	"github.com/jobpilot/jobpilot/internal/intake"
	"github.com/jobpilot/jobpilot/internal/services"
)

type SprintHandler struct {
	Apps    *services.ApplicationService
	Sprints *services.SprintService
}

func NewSprintHandler(apps *services.ApplicationService, sprints *services.SprintService) *SprintHandler {
	return &SprintHandler{Apps: apps, Sprints: sprints}
}

// Create is POST /sprints: explicit sprint generation for an application.
func (h *SprintHandler) Create(c *gin.Context) {
	var req dtos.SprintCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	app, err := h.Apps.Get(req.ApplicationID)
	if err != nil {
		respondNotFoundOr500(c, err, "Application not found")
		return
	}

	now := time.Now()
	when, ok := intake.ParseRelativeDate(req.InterviewDate, now)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unrecognized interview_date: " + req.InterviewDate})
		return
	}

	sprint, err := h.Sprints.CreateForApplication(app, when, req.RoleType, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sprint generation failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sprint)
}

// Get is GET /sprints/:id.
func (h *SprintHandler) Get(c *gin.Context) {
	sprint, err := h.Sprints.Get(c.Param("id"))
	if err != nil {
		respondNotFoundOr500(c, err, "Sprint not found")
		return
	}
	c.JSON(http.StatusOK, sprint)
}

// GetByApplication is GET /applications/:id/sprint. Returns the latest
// sprint for one application.
func (h *SprintHandler) GetByApplication(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	sprint, err := h.Sprints.GetByApplication(id)
	if err != nil {
		respondNotFoundOr500(c, err, "No sprint for this application")
		return
	}
	c.JSON(http.StatusOK, sprint)
}

// ToggleTask is POST /sprints/:id/tasks/:taskID/toggle. Completion is
// recomputed bottom-up: task -> block -> day -> sprint.
func (h *SprintHandler) ToggleTask(c *gin.Context) {
	sprint, err := h.Sprints.ToggleTask(c.Param("id"), c.Param("taskID"))
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		respondNotFoundOr500(c, err, "Sprint not found")
		return
	}
	c.JSON(http.StatusOK, sprint)
}
