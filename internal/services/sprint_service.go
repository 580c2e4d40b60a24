package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jobpilot/jobpilot/internal/models"
	"github.com/jobpilot/jobpilot/internal/sprintgen"
	"gorm.io/gorm"
)

var ErrTaskNotFound = errors.New("task not found in sprint")

type SprintService struct {
	DB *gorm.DB
}

func NewSprintService(db *gorm.DB) *SprintService {
	return &SprintService{DB: db}
}

// CreateForApplication generates and persists a sprint. Sprints are
// created once per (application, interview date): an existing active
// sprint for the same pair is returned as-is instead of regenerated.
func (s *SprintService) CreateForApplication(app *models.Application, interviewDate time.Time, roleOverride string, now time.Time) (*sprintgen.Sprint, error) {
	day := time.Date(interviewDate.Year(), interviewDate.Month(), interviewDate.Day(), 0, 0, 0, 0, interviewDate.Location())

	var existing models.Sprint
	err := s.DB.Where("application_id = ? AND interview_date = ? AND status = ?", app.ID, day, "active").
		First(&existing).Error
	if err == nil {
		return s.inflate(&existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role := roleOverride
	if role == "" {
		role = app.Role
	}
	gen := sprintgen.Generate(fmt.Sprint(app.ID), day, sprintgen.ParseRoleType(role), now)

	plans, err := json.Marshal(gen.DailyPlans)
	if err != nil {
		return nil, fmt.Errorf("encode daily plans: %w", err)
	}
	rec := models.Sprint{
		ID:            gen.ID,
		ApplicationID: app.ID,
		InterviewDate: gen.InterviewDate,
		RoleType:      string(gen.RoleType),
		TotalDays:     gen.TotalDays,
		Status:        string(gen.Status),
		PlansJSON:     string(plans),
	}
	if err := s.DB.Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("create sprint: %w", err)
	}
	return &gen, nil
}

func (s *SprintService) Get(id string) (*sprintgen.Sprint, error) {
	var rec models.Sprint
	if err := s.DB.First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return s.inflate(&rec)
}

func (s *SprintService) GetByApplication(applicationID uint) (*sprintgen.Sprint, error) {
	var rec models.Sprint
	err := s.DB.Where("application_id = ?", applicationID).
		Order("created_at DESC").
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return s.inflate(&rec)
}

// ToggleTask flips one task and persists the recomputed completion state.
func (s *SprintService) ToggleTask(sprintID, taskID string) (*sprintgen.Sprint, error) {
	var rec models.Sprint
	if err := s.DB.First(&rec, "id = ?", sprintID).Error; err != nil {
		return nil, err
	}
	sprint, err := s.inflate(&rec)
	if err != nil {
		return nil, err
	}
	if !sprintgen.ToggleTask(sprint, taskID) {
		return nil, ErrTaskNotFound
	}

	plans, err := json.Marshal(sprint.DailyPlans)
	if err != nil {
		return nil, fmt.Errorf("encode daily plans: %w", err)
	}
	err = s.DB.Model(&rec).Updates(map[string]interface{}{
		"plans_json": string(plans),
		"status":     string(sprint.Status),
	}).Error
	if err != nil {
		return nil, err
	}
	return sprint, nil
}

// ExpireOverdue marks active sprints whose interview date has passed.
// Returns the number of sprints swept.
func (s *SprintService) ExpireOverdue(now time.Time) (int64, error) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	res := s.DB.Model(&models.Sprint{}).
		Where("status = ? AND interview_date < ?", "active", day).
		Update("status", "expired")
	return res.RowsAffected, res.Error
}

// inflate rebuilds the in-memory sprint from a persisted row.
func (s *SprintService) inflate(rec *models.Sprint) (*sprintgen.Sprint, error) {
	var plans []sprintgen.DailyPlan
	if err := json.Unmarshal([]byte(rec.PlansJSON), &plans); err != nil {
		return nil, fmt.Errorf("decode daily plans for sprint %s: %w", rec.ID, err)
	}
	return &sprintgen.Sprint{
		ID:            rec.ID,
		ApplicationID: fmt.Sprint(rec.ApplicationID),
		InterviewDate: rec.InterviewDate,
		RoleType:      sprintgen.RoleType(rec.RoleType),
		TotalDays:     rec.TotalDays,
		Status:        sprintgen.Status(rec.Status),
		CreatedAt:     rec.CreatedAt,
		DailyPlans:    plans,
	}, nil
}
