package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"drivematch/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AppendAndHistory(t *testing.T) {
	s := NewStore(20)
	ctx := context.Background()

	err := s.Append(ctx, "session-1",
		entity.ChatTurn{Role: entity.RoleUser, Content: "hello"},
		entity.ChatTurn{Role: entity.RoleAssistant, Content: "hi there"},
	)
	require.NoError(t, err)

	history, err := s.History(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, entity.RoleUser, history[0].Role)
	assert.Equal(t, "hi there", history[1].Content)
}

func TestStore_EvictsOldestBeyondCap(t *testing.T) {
	s := NewStore(20)
	ctx := context.Background()

	// 11 exchanges push the session two turns past the cap.
	for i := 0; i < 11; i++ {
		err := s.Append(ctx, "session-1",
			entity.ChatTurn{Role: entity.RoleUser, Content: fmt.Sprintf("question %d", i)},
			entity.ChatTurn{Role: entity.RoleAssistant, Content: fmt.Sprintf("answer %d", i)},
		)
		require.NoError(t, err)
	}

	history, err := s.History(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, history, 20)

	// The first exchange fell off; the list now starts at question 1.
	assert.Equal(t, "question 1", history[0].Content)
	assert.Equal(t, "answer 10", history[19].Content)
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	s := NewStore(20)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, "session-1", entity.ChatTurn{Role: entity.RoleUser, Content: "a"}))
	require.NoError(t, s.Append(ctx, "session-2", entity.ChatTurn{Role: entity.RoleUser, Content: "b"}))

	first, err := s.History(ctx, "session-1")
	require.NoError(t, err)
	second, err := s.History(ctx, "session-2")
	require.NoError(t, err)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, "a", first[0].Content)
	assert.Equal(t, "b", second[0].Content)
}

func TestStore_Clear(t *testing.T) {
	s := NewStore(20)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, "session-1", entity.ChatTurn{Role: entity.RoleUser, Content: "hello"}))
	require.NoError(t, s.Clear(ctx, "session-1"))

	history, err := s.History(ctx, "session-1")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestStore_HistoryReturnsCopy(t *testing.T) {
	s := NewStore(20)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, "session-1", entity.ChatTurn{Role: entity.RoleUser, Content: "original"}))

	history, err := s.History(ctx, "session-1")
	require.NoError(t, err)
	history[0].Content = "mutated"

	fresh, err := s.History(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, "original", fresh[0].Content)
}

func TestStore_ConcurrentAppends(t *testing.T) {
	s := NewStore(200)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = s.Append(ctx, "session-1", entity.ChatTurn{
				Role:    entity.RoleUser,
				Content: fmt.Sprintf("turn %d", n),
			})
		}(i)
	}
	wg.Wait()

	history, err := s.History(ctx, "session-1")
	require.NoError(t, err)
	assert.Len(t, history, 50)
}
