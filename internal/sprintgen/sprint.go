// Package sprintgen builds interview-preparation sprints: day-by-day study
// plans derived from a role type and the number of days left before the
// interview. Generation is a pure template fill over static tables; all
// persistence and progress mutation live with the caller.
package sprintgen

import (
	"strings"
	"time"
)

// RoleType selects which curriculum table a sprint is built from.
type RoleType string

const (
	RoleSDE      RoleType = "SDE"
	RoleSDET     RoleType = "SDET"
	RoleData     RoleType = "Data"
	RolePM       RoleType = "PM"
	RoleFrontend RoleType = "Frontend"
	RoleDevOps   RoleType = "DevOps"
)

// Focus is the study category for one day.
type Focus string

const (
	FocusDSA          Focus = "DSA"
	FocusSystemDesign Focus = "SystemDesign"
	FocusBehavioral   Focus = "Behavioral"
	FocusReview       Focus = "Review"
	FocusMock         Focus = "Mock"
)

// Status of a sprint as a whole.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusExpired   Status = "expired"
)

// BlockType splits a day into its two halves.
type BlockType string

const (
	BlockMorning BlockType = "morning"
	BlockEvening BlockType = "evening"
)

type Task struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Category    string `json:"category"`
}

type Block struct {
	ID        string    `json:"id"`
	Type      BlockType `json:"type"`
	Duration  string    `json:"duration"`
	Tasks     []Task    `json:"tasks"`
	Completed bool      `json:"completed"`
}

type DailyPlan struct {
	Day       int       `json:"day"`
	Date      time.Time `json:"date"`
	Focus     Focus     `json:"focus"`
	Blocks    []Block   `json:"blocks"`
	Completed bool      `json:"completed"`
}

type Sprint struct {
	ID            string      `json:"id"`
	ApplicationID string      `json:"application_id"`
	InterviewDate time.Time   `json:"interview_date"`
	RoleType      RoleType    `json:"role_type"`
	TotalDays     int         `json:"total_days"`
	Status        Status      `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	DailyPlans    []DailyPlan `json:"daily_plans"`
}

// ParseRoleType maps a free-form role label onto a curriculum role type.
// Unrecognized labels map onto an empty RoleType, which the generator
// treats as "use the generic template".
func ParseRoleType(role string) RoleType {
	r := strings.ToLower(role)
	switch {
	case strings.Contains(r, "sdet") || strings.Contains(r, "test") || strings.Contains(r, "qa"):
		return RoleSDET
	case strings.Contains(r, "data") || strings.Contains(r, "ml") || strings.Contains(r, "machine learning"):
		return RoleData
	case strings.Contains(r, "product manager") || r == "pm" || strings.Contains(r, "program manager"):
		return RolePM
	case strings.Contains(r, "frontend") || strings.Contains(r, "front end") || strings.Contains(r, "front-end"):
		return RoleFrontend
	case strings.Contains(r, "devops") || strings.Contains(r, "sre") || strings.Contains(r, "site reliability") || strings.Contains(r, "platform"):
		return RoleDevOps
	case strings.Contains(r, "sde") || strings.Contains(r, "swe") || strings.Contains(r, "engineer") || strings.Contains(r, "developer"):
		return RoleSDE
	}
	return RoleType("")
}
