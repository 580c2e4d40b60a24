package services

import (
	"context"
	"testing"
	"time"

	"github.com/jobpilot/jobpilot/internal/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatHandleFallbackWithoutLLM(t *testing.T) {
	// Conversational messages never touch the application service, so a
	// nil service is safe here.
	chat := NewChatService(nil, nil)

	res, err := chat.Handle(context.Background(), dtos.ChatIntakeRequest{
		Message: "how should I prepare for system design?",
	}, time.Now())
	require.NoError(t, err)
	assert.Empty(t, res.Created)
	assert.NotEmpty(t, res.Reply)
}

func TestChatHandleEmptyMessage(t *testing.T) {
	chat := NewChatService(nil, nil)

	res, err := chat.Handle(context.Background(), dtos.ChatIntakeRequest{}, time.Now())
	require.NoError(t, err)
	assert.Empty(t, res.Created)
	assert.NotEmpty(t, res.Reply)
}

func TestIntakeCommandDetection(t *testing.T) {
	assert.True(t, intakeCommandRe.MatchString("applied for SDE role at Google"))
	assert.True(t, intakeCommandRe.MatchString("track Stripe for me"))
	assert.True(t, intakeCommandRe.MatchString("submitted my resume to Zomato"))
	assert.False(t, intakeCommandRe.MatchString("what is a good system design book?"))
}
