package handler

import (
	"log/slog"
	"net/http"

	"drivematch/internal/delivery/http/response"
	"drivematch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ChatHandler holds dependencies for the advisor chat endpoints.
type ChatHandler struct {
	uc     usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(uc usecase.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		uc:     uc,
		logger: logger,
	}
}

// SendMessage handles one chat turn.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	var input *usecase.ChatInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "message is required")
	}

	output, err := h.uc.SendMessage(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Reply generated successfully")
}

// ClearSession handles the conversation reset request.
func (h *ChatHandler) ClearSession(c echo.Context) error {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "sessionId is required")
	}

	if err := h.uc.ClearSession(c.Request().Context(), sessionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"message": "Conversation history cleared",
	}, "Session cleared successfully")
}
