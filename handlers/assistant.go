package handlers

import (
	"errors"
	"net/http"
	"strings"

	"flightly/models"
	ai "flightly/services/intelligence"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler exposes the conversational booking assistant.
type AssistantHandler struct {
	Service ai.AssistantService
}

func NewAssistantHandler(svc ai.AssistantService) *AssistantHandler {
	return &AssistantHandler{Service: svc}
}

// ChatHandler runs one conversation turn.
func (h *AssistantHandler) ChatHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message must not be empty"})
		return
	}

	resp, err := h.Service.HandleTurn(c.Request.Context(), req)
	if err != nil {
		logger.Error("Chat turn failed", zap.String("session_id", req.SessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process message"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetSessionHandler returns the current draft and state of a conversation.
func (h *AssistantHandler) GetSessionHandler(c *gin.Context) {
	id := c.Param("id")
	session, err := h.Service.GetSession(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ai.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		getLogger(c).Error("Failed to load session", zap.String("session_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session":        session,
		"missing_fields": session.Draft.MissingRequiredFields(),
	})
}

// ClearSessionHandler forgets a conversation.
func (h *AssistantHandler) ClearSessionHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.ClearSession(c.Request.Context(), id); err != nil {
		getLogger(c).Error("Failed to clear session", zap.String("session_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
		return
	}
	c.Status(http.StatusNoContent)
}
