// Package memory provides the in-process SessionStore implementation.
package memory

import (
	"context"
	"sync"

	"drivematch/internal/domain/entity"
	"drivematch/internal/domain/repository"
)

// store keeps per-session turn lists in process memory, guarded by a mutex so
// concurrent chats on the same session cannot lose an update. Histories do not
// survive a restart and there is no expiry beyond the turn cap.
type store struct {
	mu         sync.RWMutex
	sessions   map[string][]entity.ChatTurn
	maxHistory int
}

// NewStore is the constructor for the in-memory session store.
func NewStore(maxHistory int) repository.SessionStore {
	return &store{
		sessions:   make(map[string][]entity.ChatTurn),
		maxHistory: maxHistory,
	}
}

// History returns a copy of the session's turn list, oldest first.
func (s *store) History(_ context.Context, sessionID string) ([]entity.ChatTurn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.sessions[sessionID]
	out := make([]entity.ChatTurn, len(turns))
	copy(out, turns)

	return out, nil
}

// Append adds turns to the session and evicts the oldest entries beyond the cap.
func (s *store) Append(_ context.Context, sessionID string, turns ...entity.ChatTurn) error {
	if len(turns) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.sessions[sessionID], turns...)
	if len(history) > s.maxHistory {
		trimmed := make([]entity.ChatTurn, s.maxHistory)
		copy(trimmed, history[len(history)-s.maxHistory:])
		history = trimmed
	}
	s.sessions[sessionID] = history

	return nil
}

// Clear removes the session entirely.
func (s *store) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)

	return nil
}
