// Package cohere implements the TextGenerator contract against the Cohere v2
// chat REST API.
package cohere

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"drivematch/config"
	"drivematch/internal/domain/entity"
	"drivematch/internal/domain/service"

	"github.com/pkg/errors"
)

const chatPath = "/v2/chat"

// client sends single-shot chat requests. No retries: a failed call surfaces
// to the caller as-is.
type client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// New is the constructor for the Cohere chat client.
func New(cfg *config.Config) (service.TextGenerator, error) {
	if cfg.Cohere == nil {
		return nil, errors.New("cohere configuration is required")
	}

	return &client{
		apiKey:  cfg.Cohere.APIKey,
		baseURL: strings.TrimRight(cfg.Cohere.BaseURL, "/"),
		model:   cfg.Cohere.Model,
		httpClient: &http.Client{
			Timeout: cfg.Cohere.Timeout,
		},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type contentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type chatResponse struct {
	Message struct {
		Content []contentPart `json:"content"`
	} `json:"message"`
}

// Generate sends the ordered message list and concatenates the text parts of
// the response.
func (c *client) Generate(ctx context.Context, messages []entity.ChatTurn, temperature float64) (string, error) {
	reqBody := chatRequest{
		Model:       c.model,
		Messages:    make([]chatMessage, 0, len(messages)),
		Temperature: temperature,
	}
	for _, m := range messages {
		reqBody.Messages = append(reqBody.Messages, chatMessage{
			Role:    m.Role.String(),
			Content: m.Content,
		})
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatPath, bytes.NewReader(payload))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return "", errors.Errorf("generation API returned status %d: %s", resp.StatusCode, string(snippet))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", errors.Wrap(err, "decode generation response")
	}

	// The v2 API returns the message as typed content parts; only the text
	// parts matter here.
	texts := make([]string, 0, len(parsed.Message.Content))
	for _, part := range parsed.Message.Content {
		if part.Type == "text" && part.Text != "" {
			texts = append(texts, part.Text)
		}
	}

	if len(texts) == 0 {
		return "", errors.New("generation response contained no text content")
	}

	return strings.Join(texts, "\n\n"), nil
}
