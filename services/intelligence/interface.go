package ai

import (
	"context"
	"errors"

	"flightly/models"
)

// ErrSessionNotFound is returned when a session id has no stored state.
var ErrSessionNotFound = errors.New("session not found")

// FallbackReply is sent when the text generator fails.
const FallbackReply = "Sorry, I'm having trouble responding right now. Please try again in a moment."

// TextGenerator produces one reply from an ordered list of prompt blocks.
type TextGenerator interface {
	Generate(ctx context.Context, parts []string) (string, error)
}

// GeneratorFunc adapts a function to TextGenerator.
type GeneratorFunc func(ctx context.Context, parts []string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, parts []string) (string, error) {
	return f(ctx, parts)
}

// SessionStore persists assistant sessions between turns.
type SessionStore interface {
	// Get returns nil, nil when the session does not exist.
	Get(ctx context.Context, id string) (*models.AssistantSession, error)
	Set(ctx context.Context, session *models.AssistantSession) error
	Clear(ctx context.Context, id string) error
}

// Extractor pulls booking fields out of a message.
type Extractor interface {
	Extract(message string, draft models.BookingDraft) (models.BookingDraft, []string)
}

// AssistantService runs one conversation turn at a time per session.
type AssistantService interface {
	HandleTurn(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
	GetSession(ctx context.Context, id string) (*models.AssistantSession, error)
	ClearSession(ctx context.Context, id string) error
}
