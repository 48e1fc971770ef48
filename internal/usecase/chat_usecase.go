package usecase

import "context"

// --- Input DTOs ---

// ChatInput carries one user message for the advisor chat. SessionID is
// optional: a new session id is generated when it is empty. UserProfile is an
// opaque client-supplied object embedded into the advisor context when present.
type ChatInput struct {
	Message     string         `json:"message" validate:"required"`
	SessionID   string         `json:"sessionId"`
	UserProfile map[string]any `json:"userProfile"`
}

// --- Output DTOs ---

// ChatOutput returns the assistant reply together with the session id the
// client should reuse on the next turn.
type ChatOutput struct {
	Reply     string `json:"reply"`
	SessionID string `json:"sessionId"`
}

// ChatUsecase drives the advisor conversation over the session store.
type ChatUsecase interface {
	// SendMessage appends the user turn, invokes the text-generation API with
	// the accumulated context, stores both turns and returns the reply.
	SendMessage(ctx context.Context, input *ChatInput) (*ChatOutput, error)

	// ClearSession removes the stored conversation history for the session.
	ClearSession(ctx context.Context, sessionID string) error
}
