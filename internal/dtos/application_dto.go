package dtos

// ApplicationCreateRequest creates one application. Text may be a noisy
// free-text line ("Applied for zee5 - sdet role"); structured fields win
// over whatever the normalizer extracts.
type ApplicationCreateRequest struct {
	Text        string `json:"text"`
	CompanyName string `json:"company_name"`
	Role        string `json:"role"`
	Status      string `json:"status"` // defaults to "applied" if empty
	Notes       string `json:"notes"`
	AppliedAt   string `json:"applied_at"` // ISO date or relative ("yesterday")
}

type ApplicationUpdateRequest struct {
	Role  *string `json:"role"`
	Notes *string `json:"notes"`
}

// StatusMoveRequest moves a Kanban card. InterviewDate is required when
// moving to "interview" so a prep sprint can be generated.
type StatusMoveRequest struct {
	Status        string `json:"status" binding:"required"`
	InterviewDate string `json:"interview_date"`
	Details       string `json:"details"`
}
