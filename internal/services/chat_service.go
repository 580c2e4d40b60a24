package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jobpilot/jobpilot/internal/dtos"
	"github.com/jobpilot/jobpilot/internal/intake"
	"github.com/jobpilot/jobpilot/internal/models"
)

// intakeCommandRe decides whether a chat message is an application-intake
// command rather than a general question.
var intakeCommandRe = regexp.MustCompile(`(?i)\b(applied|applying|application|track|add|submitted|resume)\b`)

type ChatService struct {
	Apps *ApplicationService
	LLM  *LLMService
}

func NewChatService(apps *ApplicationService, llm *LLMService) *ChatService {
	return &ChatService{Apps: apps, LLM: llm}
}

// ChatResult is what the chat endpoint returns: a human-readable reply
// plus any application records the message produced.
type ChatResult struct {
	Reply   string               `json:"reply"`
	Created []models.Application `json:"created,omitempty"`
}

// Handle dispatches one chat request. Intake-style messages run through
// the normalizer and persist each resolved entry; everything else falls
// back to the LLM when one is configured.
func (c *ChatService) Handle(ctx context.Context, req dtos.ChatIntakeRequest, now time.Time) (*ChatResult, error) {
	entries := req.Entries
	if len(entries) == 0 && strings.TrimSpace(req.Message) != "" {
		entries = []string{req.Message}
	}
	if len(entries) == 0 {
		return &ChatResult{Reply: "Tell me about an application to track, or ask a question."}, nil
	}

	if len(req.Entries) > 0 || intakeCommandRe.MatchString(req.Message) {
		return c.handleIntake(entries, now)
	}

	if c.LLM != nil {
		reply, err := c.LLM.Reply(ctx, req.Message)
		if err != nil {
			return nil, fmt.Errorf("chat reply: %w", err)
		}
		return &ChatResult{Reply: reply}, nil
	}
	return &ChatResult{Reply: "I can track applications for you. Try: \"applied for SDE role at Google yesterday\"."}, nil
}

func (c *ChatService) handleIntake(entries []string, now time.Time) (*ChatResult, error) {
	normalized := intake.NormalizeTexts(entries, now)
	if len(normalized) == 0 {
		return &ChatResult{Reply: "I couldn't find a company name in that. Try \"applied for <role> at <company>\"."}, nil
	}

	result := &ChatResult{}
	var names []string
	for _, app := range normalized {
		rec, err := c.Apps.CreateFromIntake(app)
		if err != nil {
			return nil, err
		}
		result.Created = append(result.Created, *rec)
		names = append(names, rec.Company.Name)
	}
	result.Reply = fmt.Sprintf("Tracked %d application(s): %s", len(names), strings.Join(names, ", "))
	return result, nil
}
