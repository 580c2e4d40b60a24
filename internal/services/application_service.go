package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/jobpilot/jobpilot/internal/dtos"
	"github.com/jobpilot/jobpilot/internal/intake"
	"github.com/jobpilot/jobpilot/internal/models"
	"gorm.io/gorm"
)

var ErrInvalidStatus = errors.New("invalid application status")

var validStatuses = map[string]bool{
	models.StatusApplied:     true,
	models.StatusShortlisted: true,
	models.StatusInterview:   true,
	models.StatusOffer:       true,
	models.StatusRejected:    true,
}

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// CreateFromIntake persists one normalized intake record, upserting the
// company by name.
func (s *ApplicationService) CreateFromIntake(app intake.Application) (*models.Application, error) {
	var company models.Company
	err := s.DB.Where(models.Company{Name: app.Company}).FirstOrCreate(&company).Error
	if err != nil {
		return nil, fmt.Errorf("upsert company %q: %w", app.Company, err)
	}

	status := app.Status
	if status == "" {
		status = models.StatusApplied
	}

	rec := &models.Application{
		CompanyID: company.ID,
		Role:      app.Role,
		Status:    status,
		Notes:     app.Notes,
	}
	if !app.AppliedAt.IsZero() {
		t := app.AppliedAt
		rec.AppliedAt = &t
	}
	if err := s.DB.Create(rec).Error; err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}
	rec.Company = company
	return rec, nil
}

// List returns applications, optionally filtered by status, newest first.
func (s *ApplicationService) List(status string) ([]models.Application, error) {
	q := s.DB.Preload("Company").Order("created_at DESC")
	if status != "" {
		if !validStatuses[status] {
			return nil, ErrInvalidStatus
		}
		q = q.Where("status = ?", status)
	}
	var apps []models.Application
	if err := q.Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (s *ApplicationService) Get(id uint) (*models.Application, error) {
	var app models.Application
	if err := s.DB.Preload("Company").First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (s *ApplicationService) Update(id uint, req dtos.ApplicationUpdateRequest) (*models.Application, error) {
	app, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) == 0 {
		return app, nil
	}
	if err := s.DB.Model(app).Updates(updates).Error; err != nil {
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) Delete(id uint) error {
	return s.DB.Delete(&models.Application{}, id).Error
}

// MoveStatus performs a Kanban move and logs a StatusEvent. Moving to the
// same column is a no-op.
func (s *ApplicationService) MoveStatus(id uint, to, details string) (*models.Application, error) {
	if !validStatuses[to] {
		return nil, ErrInvalidStatus
	}
	app, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if app.Status == to {
		return app, nil
	}

	from := app.Status
	if err := s.DB.Model(app).Update("status", to).Error; err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	event := models.StatusEvent{
		ApplicationID: app.ID,
		FromStatus:    from,
		ToStatus:      to,
		Details:       details,
	}
	if err := s.DB.Create(&event).Error; err != nil {
		return nil, fmt.Errorf("log status event: %w", err)
	}
	app.Status = to
	return app, nil
}

// ActiveForCompany returns the newest application for a company that is
// still in play (not rejected, no offer yet).
func (s *ApplicationService) ActiveForCompany(companyID uint) (*models.Application, error) {
	var app models.Application
	err := s.DB.Preload("Company").
		Where("company_id = ? AND status NOT IN ?", companyID, []string{models.StatusRejected, models.StatusOffer}).
		Order("created_at DESC").
		First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// DashboardStats aggregates the overview screen.
type DashboardStats struct {
	StatusCounts       map[string]int64     `json:"status_counts"`
	TotalApplications  int64                `json:"total_applications"`
	ActiveSprints      int64                `json:"active_sprints"`
	UpcomingInterviews []models.Sprint      `json:"upcoming_interviews"`
	RecentEvents       []models.StatusEvent `json:"recent_events"`
}

func (s *ApplicationService) Dashboard(now time.Time) (*DashboardStats, error) {
	stats := &DashboardStats{StatusCounts: map[string]int64{}}

	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := s.DB.Model(&models.Application{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		stats.StatusCounts[r.Status] = r.Count
		stats.TotalApplications += r.Count
	}

	err = s.DB.Model(&models.Sprint{}).
		Where("status = ?", "active").
		Count(&stats.ActiveSprints).Error
	if err != nil {
		return nil, err
	}

	weekOut := now.AddDate(0, 0, 7)
	err = s.DB.Where("status = ? AND interview_date BETWEEN ? AND ?", "active", now, weekOut).
		Order("interview_date ASC").
		Find(&stats.UpcomingInterviews).Error
	if err != nil {
		return nil, err
	}

	err = s.DB.Order("created_at DESC").Limit(10).Find(&stats.RecentEvents).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
