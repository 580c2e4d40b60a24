package models

import (
	"time"

	"gorm.io/gorm"
)

// Application statuses double as the Kanban columns.
const (
	StatusApplied     = "applied"
	StatusShortlisted = "shortlisted"
	StatusInterview   = "interview"
	StatusOffer       = "offer"
	StatusRejected    = "rejected"
)

type Company struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name string `gorm:"uniqueIndex;not null" json:"name"`

	// 'omitempty' prevents cycles when fetching Application -> Company.
	Applications []Application `json:"applications,omitempty"`
}

type Application struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CompanyID uint    `json:"company_id"`
	Company   Company `json:"company"`

	Role      string     `json:"role"`
	Status    string     `gorm:"default:'applied'" json:"status"`
	Notes     string     `gorm:"type:text" json:"notes"`
	AppliedAt *time.Time `json:"applied_at,omitempty"`
}

// StatusEvent records every Kanban move so the dashboard can show a
// recent-activity feed.
type StatusEvent struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	ApplicationID uint      `json:"application_id"`
	FromStatus    string    `json:"from_status"`
	ToStatus      string    `json:"to_status"`
	Details       string    `gorm:"type:text" json:"details"`
}

// Sprint persists a generated study plan. The daily plans are stored as a
// JSON document; their structure lives in the sprintgen package.
type Sprint struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	ApplicationID uint      `gorm:"index" json:"application_id"`
	InterviewDate time.Time `json:"interview_date"`
	RoleType      string    `json:"role_type"`
	TotalDays     int       `json:"total_days"`
	Status        string    `gorm:"default:'active'" json:"status"`
	PlansJSON     string    `gorm:"type:text" json:"-"`
}

// User keeps the calendar watcher's sync bookmark.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Email             string `gorm:"uniqueIndex;not null" json:"email"`
	CalendarSyncToken string `json:"calendar_sync_token"`
}

// ProcessedEvent dedups calendar events across sync cycles.
type ProcessedEvent struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
}
