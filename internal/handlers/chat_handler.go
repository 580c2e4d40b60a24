package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jobpilot/jobpilot/internal/dtos"
	"github.com/jobpilot/jobpilot/internal/services"
)

type ChatHandler struct {
	Chat *services.ChatService
	LLM  *services.LLMService
}

func NewChatHandler(chat *services.ChatService, llm *services.LLMService) *ChatHandler {
	return &ChatHandler{Chat: chat, LLM: llm}
}

// Intake is POST /chat/intake: free-text messages become tracked
// applications, anything else gets a conversational reply.
func (h *ChatHandler) Intake(c *gin.Context) {
	var req dtos.ChatIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	result, err := h.Chat.Handle(c.Request.Context(), req, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Chat handling failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Extract is POST /chat/extract: pasted posting text goes to the LLM and
// the raw JSON comes back untouched.
func (h *ChatHandler) Extract(c *gin.Context) {
	if h.LLM == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI extraction is not configured (set GEMINI_API_KEY)"})
		return
	}

	var req dtos.ExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	extracted, err := h.LLM.ExtractApplication(c.Request.Context(), req.RawText)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI extraction failed: " + err.Error()})
		return
	}

	// json.RawMessage keeps the model's JSON from being re-escaped.
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    json.RawMessage(extracted),
	})
}
