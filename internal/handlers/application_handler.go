package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jobpilot/jobpilot/internal/dtos"
	"github.com/jobpilot/jobpilot/internal/intake"
	"github.com/jobpilot/jobpilot/internal/models"
	"github.com/jobpilot/jobpilot/internal/services"
	"gorm.io/gorm"
)

type ApplicationHandler struct {
	Apps    *services.ApplicationService
	Sprints *services.SprintService
}

func NewApplicationHandler(apps *services.ApplicationService, sprints *services.SprintService) *ApplicationHandler {
	return &ApplicationHandler{Apps: apps, Sprints: sprints}
}

// Create is POST /applications. Free text in "text" goes through the
// intake normalizer; structured fields ride along and win over extraction.
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req dtos.ApplicationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	company := req.Text
	if company == "" {
		company = req.CompanyName
	}
	normalized := intake.Normalize([]intake.RawInput{{
		Company:   company,
		Role:      req.Role,
		Status:    req.Status,
		Notes:     req.Notes,
		AppliedAt: req.AppliedAt,
	}}, time.Now())
	if len(normalized) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not resolve a company name from the input"})
		return
	}

	app, err := h.Apps.CreateFromIntake(normalized[0])
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create application: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, app)
}

// List is GET /applications, with an optional ?status= Kanban filter.
func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.Apps.List(c.Query("status"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list applications: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	app, err := h.Apps.Get(id)
	if err != nil {
		respondNotFoundOr500(c, err, "Application not found")
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dtos.ApplicationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	app, err := h.Apps.Update(id, req)
	if err != nil {
		respondNotFoundOr500(c, err, "Application not found")
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Apps.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete application: " + err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// MoveStatus is PATCH /applications/:id/status, the Kanban move. Moving
// to "interview" with an interview_date also generates a prep sprint.
func (h *ApplicationHandler) MoveStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dtos.StatusMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	app, err := h.Apps.MoveStatus(id, req.Status, req.Details)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondNotFoundOr500(c, err, "Application not found")
		return
	}

	resp := gin.H{"application": app}
	if req.Status == models.StatusInterview && req.InterviewDate != "" {
		now := time.Now()
		when, ok := intake.ParseRelativeDate(req.InterviewDate, now)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unrecognized interview_date: " + req.InterviewDate})
			return
		}
		sprint, err := h.Sprints.CreateForApplication(app, when, "", now)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Sprint generation failed: " + err.Error()})
			return
		}
		resp["sprint"] = sprint
	}
	c.JSON(http.StatusOK, resp)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id: " + c.Param("id")})
		return 0, false
	}
	return uint(id), true
}

func respondNotFoundOr500(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
