package models

import "time"

// ChatTurn is one prior exchange, preserved verbatim.
type ChatTurn struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}

// ChatRequest is the payload coming from the chat front end into /api/assistant/chat.
type ChatRequest struct {
	SessionID string        `json:"session_id,omitempty"`      // empty starts a new conversation
	Message   string        `json:"message" binding:"required"` // the user's new message
	History   []ChatTurn    `json:"history"`                   // ordered prior turns
	Details   *DraftDetails `json:"details,omitempty"`         // optional form fields
}

// ChatResponse is what the chat handler returns to the front end.
type ChatResponse struct {
	SessionID    string `json:"session_id"`
	ResponseText string `json:"response"`
}

// ConversationState tags where a conversation is in the booking flow.
type ConversationState string

const (
	StateInitial    ConversationState = "initial"
	StateCollecting ConversationState = "collecting_details"
	StateReady      ConversationState = "ready_to_confirm"
	StateBooked     ConversationState = "booked"
)

// AssistantSession is the per-conversation state owned by the assistant service.
type AssistantSession struct {
	ID        string            `json:"id"`
	Draft     BookingDraft      `json:"draft"`
	State     ConversationState `json:"state"`
	UpdatedAt time.Time         `json:"updated_at"`
}
