package dtos

// ChatIntakeRequest carries one chat message or a batch of free-text
// entries. When Entries is empty the single Message is the batch.
type ChatIntakeRequest struct {
	Message string   `json:"message"`
	Entries []string `json:"entries"`
}

// ExtractionRequest asks the LLM to pull application fields out of a
// pasted job posting.
type ExtractionRequest struct {
	RawText string `json:"raw_text" binding:"required"`
	URL     string `json:"url"`
}

// SprintCreateRequest explicitly generates a sprint for an application.
type SprintCreateRequest struct {
	ApplicationID uint   `json:"application_id" binding:"required"`
	InterviewDate string `json:"interview_date" binding:"required"` // ISO or relative
	RoleType      string `json:"role_type"`
}
