package cohere

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"drivematch/config"
	"drivematch/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Cohere: &config.CohereConfig{
			APIKey:  "test-key",
			BaseURL: server.URL,
			Model:   "command-r-plus",
			Timeout: 2 * time.Second,
		},
	}

	generator, err := New(cfg)
	require.NoError(t, err)

	return generator.(*client)
}

func TestClient_Generate_JoinsTextParts(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/chat", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "command-r-plus", req.Model)
		assert.InDelta(t, 0.6, req.Temperature, 0.001)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)

		fmt.Fprint(w, `{"message":{"content":[
			{"type":"text","text":"First paragraph."},
			{"type":"tool_call","text":"ignored"},
			{"type":"text","text":"Second paragraph."}
		]}}`)
	})

	reply, err := c.Generate(context.Background(), []entity.ChatTurn{
		{Role: entity.RoleSystem, Content: "You are an advisor."},
		{Role: entity.RoleUser, Content: "Hello"},
	}, 0.6)
	require.NoError(t, err)
	assert.Equal(t, "First paragraph.\n\nSecond paragraph.", reply)
}

func TestClient_Generate_NonSuccessStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message":"invalid api token"}`)
	})

	reply, err := c.Generate(context.Background(), []entity.ChatTurn{
		{Role: entity.RoleUser, Content: "Hello"},
	}, 0.6)
	require.Error(t, err)
	assert.Empty(t, reply)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "invalid api token")
}

func TestClient_Generate_NoTextContent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"message":{"content":[{"type":"tool_call","text":""}]}}`)
	})

	reply, err := c.Generate(context.Background(), []entity.ChatTurn{
		{Role: entity.RoleUser, Content: "Hello"},
	}, 0.6)
	require.Error(t, err)
	assert.Empty(t, reply)
	assert.Contains(t, err.Error(), "no text content")
}

func TestClient_Generate_MalformedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `not json`)
	})

	_, err := c.Generate(context.Background(), []entity.ChatTurn{
		{Role: entity.RoleUser, Content: "Hello"},
	}, 0.6)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode generation response")
}

func TestNew_RequiresConfig(t *testing.T) {
	_, err := New(&config.Config{})
	require.Error(t, err)
}
