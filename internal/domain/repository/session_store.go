package repository

import (
	"context"

	"drivematch/internal/domain/entity"
)

// SessionStore defines the conversation history storage for chat sessions.
// Histories are bounded: implementations evict the oldest turns once the
// configured cap is exceeded. An unknown session id yields an empty history,
// not an error.
type SessionStore interface {
	// History returns the ordered turn list for the session, oldest first.
	History(ctx context.Context, sessionID string) ([]entity.ChatTurn, error)

	// Append adds turns to the end of the session history, creating the
	// session if needed, then trims to the most recent cap entries.
	Append(ctx context.Context, sessionID string, turns ...entity.ChatTurn) error

	// Clear removes the session entirely. Clearing an unknown session is a no-op.
	Clear(ctx context.Context, sessionID string) error
}
