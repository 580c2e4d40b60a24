package services

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

type LLMService struct {
	Client llms.Model
}

// NewLLMService initializes the Gemini client. A missing API key disables
// AI features instead of killing the server: the caller gets nil.
func NewLLMService() *LLMService {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("⚠️  GEMINI_API_KEY is empty. AI extraction and chat replies are disabled.")
		return nil
	}

	ctx := context.Background()
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel("gemini-2.5-flash"),
	)
	if err != nil {
		log.Printf("⚠️  Failed to create Gemini client: %v. AI features disabled.", err)
		return nil
	}
	return &LLMService{Client: llm}
}

const applicationExtractionPrompt = `
You are a Job Application Data Extraction Agent. Analyze the provided raw
text or HTML from a job posting or application confirmation and extract
structured data.

### INSTRUCTIONS:
1. **Analyze** the text to identify the application details.
2. **Ignore** navigation menus, footers, "similar jobs" lists and ads.
3. **Extract** the following fields strictly.
4. **Format** the output as valid JSON only. Do not wrap the output in markdown code blocks.

### OUTPUT SCHEMA:
{
    "company_name": "Name of the company (e.g., Google, StartupInc)",
    "role_title": "Job title (e.g., Senior Backend Engineer)",
    "location": "Job location or 'Remote'",
    "status": "One of applied/shortlisted/interview/offer/rejected if the text implies it, otherwise null",
    "notes": "A short summary of anything worth remembering (salary, recruiter name, next steps)",
    "applied_at": "ISO date (YYYY-MM-DD) if the text states when the application was made, otherwise null"
}

### CONSTRAINT:
If a piece of information is missing, set the value to null. Do not hallucinate or guess.

### RAW CONTENT:
%s
`

// ExtractApplication takes pasted posting text and returns the raw JSON
// string produced by the model.
func (s *LLMService) ExtractApplication(ctx context.Context, rawText string) (string, error) {
	if len(rawText) > 20000 {
		rawText = rawText[:20000]
	}
	prompt := fmt.Sprintf(applicationExtractionPrompt, rawText)
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		return "", err
	}
	return resp, nil
}

const chatReplyPrompt = `
You are a concise assistant inside a job-application tracker. Answer the
user's question about job hunting, interview preparation or their pipeline
in at most three sentences.

### USER MESSAGE:
%s
`

// Reply answers a conversational chat message that is not an intake command.
func (s *LLMService) Reply(ctx context.Context, message string) (string, error) {
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, fmt.Sprintf(chatReplyPrompt, message))
	if err != nil {
		return "", err
	}
	return resp, nil
}
