package handler

import (
	"context"
	"net/http"
	"testing"

	domainerrors "drivematch/internal/domain/errors"
	mockUsecase "drivematch/internal/mocks/usecase"
	"drivematch/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChatHandler_SendMessage_Success(t *testing.T) {
	uc := mockUsecase.NewMockChatUsecase(t)
	h := NewChatHandler(uc, newDiscardLogger())

	body := `{
		"message": "Can I afford a new car?",
		"userProfile": {"income": 55000}
	}`

	uc.EXPECT().
		SendMessage(mock.Anything, mock.AnythingOfType("*usecase.ChatInput")).
		Run(func(_ context.Context, input *usecase.ChatInput) {
			assert.Equal(t, "Can I afford a new car?", input.Message)
			assert.Empty(t, input.SessionID)
			assert.Equal(t, float64(55000), input.UserProfile["income"])
		}).
		Return(&usecase.ChatOutput{
			Reply:     "Probably, with a sensible budget.",
			SessionID: "3f6c1e3e-8e38-41d2-b8a9-52b0f4f7b0aa",
		}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/api/chat", body)
	require.NoError(t, h.SendMessage(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Probably, with a sensible budget.")
	assert.Contains(t, rec.Body.String(), "3f6c1e3e-8e38-41d2-b8a9-52b0f4f7b0aa")
}

func TestChatHandler_SendMessage_MissingMessage(t *testing.T) {
	uc := mockUsecase.NewMockChatUsecase(t)
	h := NewChatHandler(uc, newDiscardLogger())

	c, rec := newTestContext(t, http.MethodPost, "/api/chat", `{"sessionId": "abc"}`)
	require.NoError(t, h.SendMessage(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestChatHandler_SendMessage_GenerationFailure(t *testing.T) {
	uc := mockUsecase.NewMockChatUsecase(t)
	h := NewChatHandler(uc, newDiscardLogger())

	uc.EXPECT().
		SendMessage(mock.Anything, mock.AnythingOfType("*usecase.ChatInput")).
		Return(nil, errors.Wrap(domainerrors.ErrGenerationFailed.WithDetails("timeout"), "failed to generate chat reply"))

	c, rec := newTestContext(t, http.MethodPost, "/api/chat", `{"message": "hello"}`)
	err := h.SendMessage(c)
	require.Error(t, err)

	handleError(t, err, c)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "GENERATION_FAILED")
}

func TestChatHandler_ClearSession_Success(t *testing.T) {
	uc := mockUsecase.NewMockChatUsecase(t)
	h := NewChatHandler(uc, newDiscardLogger())

	sessionID := "3f6c1e3e-8e38-41d2-b8a9-52b0f4f7b0aa"

	uc.EXPECT().
		ClearSession(mock.Anything, sessionID).
		Return(nil)

	c, rec := newTestContext(t, http.MethodDelete, "/api/chat/"+sessionID, "")
	c.SetParamNames("sessionId")
	c.SetParamValues(sessionID)

	require.NoError(t, h.ClearSession(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Conversation history cleared")
}

func TestChatHandler_ClearSession_Error(t *testing.T) {
	uc := mockUsecase.NewMockChatUsecase(t)
	h := NewChatHandler(uc, newDiscardLogger())

	uc.EXPECT().
		ClearSession(mock.Anything, "broken").
		Return(errors.New("store unavailable"))

	c, rec := newTestContext(t, http.MethodDelete, "/api/chat/broken", "")
	c.SetParamNames("sessionId")
	c.SetParamValues("broken")

	err := h.ClearSession(c)
	require.Error(t, err)

	handleError(t, err, c)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}
