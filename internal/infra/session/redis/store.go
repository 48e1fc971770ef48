// Package redis provides the Redis-backed SessionStore implementation, used
// when conversation history must survive process restarts or be shared across
// instances.
package redis

import (
	"context"
	"encoding/json"

	"drivematch/internal/domain/entity"
	"drivematch/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "chat:session:"

// store keeps each session as a Redis list of JSON-encoded turns, trimmed to
// the configured cap on every append.
type store struct {
	client     redis.UniversalClient
	maxHistory int
}

// NewStore is the constructor for the Redis session store.
func NewStore(client redis.UniversalClient, maxHistory int) repository.SessionStore {
	return &store{
		client:     client,
		maxHistory: maxHistory,
	}
}

func sessionKey(sessionID string) string {
	return keyPrefix + sessionID
}

// History returns the session's turn list, oldest first.
func (s *store) History(ctx context.Context, sessionID string) ([]entity.ChatTurn, error) {
	raw, err := s.client.LRange(ctx, sessionKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session history")
	}

	turns := make([]entity.ChatTurn, 0, len(raw))
	for _, item := range raw {
		var turn entity.ChatTurn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			return nil, errors.Wrap(err, "failed to decode session turn")
		}
		turns = append(turns, turn)
	}

	return turns, nil
}

// Append pushes turns onto the session list and trims to the most recent cap entries.
func (s *store) Append(ctx context.Context, sessionID string, turns ...entity.ChatTurn) error {
	if len(turns) == 0 {
		return nil
	}

	encoded := make([]any, 0, len(turns))
	for _, turn := range turns {
		data, err := json.Marshal(turn)
		if err != nil {
			return errors.Wrap(err, "failed to encode session turn")
		}
		encoded = append(encoded, data)
	}

	key := sessionKey(sessionID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, encoded...)
		pipe.LTrim(ctx, key, int64(-s.maxHistory), -1)

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to append session turns")
	}

	return nil
}

// Clear removes the session entirely.
func (s *store) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}

	return nil
}
