package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"drivematch/config"
	"drivematch/internal/domain/entity"
	domainerrors "drivematch/internal/domain/errors"
	"drivematch/internal/domain/repository"
	"drivematch/internal/domain/service"
	"drivematch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// chatService implements the ChatUsecase interface on top of a SessionStore.
type chatService struct {
	store     repository.SessionStore
	generator service.TextGenerator
	cfg       *config.Config
	logger    *slog.Logger
}

// ChatServiceParams holds dependencies for the chat service, injected by Fx.
type ChatServiceParams struct {
	fx.In

	Store     repository.SessionStore
	Generator service.TextGenerator
	Config    *config.Config
	Logger    *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		store:     params.Store,
		generator: params.Generator,
		cfg:       params.Config,
		logger:    params.Logger,
	}
}

// SendMessage runs one advisor turn: load history, invoke the generation API
// with persona context + history + the new message, then persist both turns.
func (srv *chatService) SendMessage(ctx context.Context, input *usecase.ChatInput) (*usecase.ChatOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("message is required"), "empty chat message")
	}

	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	history, err := srv.store.History(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session history")
	}

	messages := make([]entity.ChatTurn, 0, len(history)+2)
	messages = append(messages, entity.ChatTurn{
		Role:    entity.RoleSystem,
		Content: srv.buildContext(input.UserProfile),
	})
	messages = append(messages, history...)
	userTurn := entity.ChatTurn{Role: entity.RoleUser, Content: input.Message}
	messages = append(messages, userTurn)

	reply, err := srv.generator.Generate(ctx, messages, srv.cfg.Cohere.Temperature)
	if err != nil {
		srv.logger.Error("Chat generation failed",
			slog.String("sessionID", sessionID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrGenerationFailed.WithDetails(err.Error()), "failed to generate chat reply")
	}

	assistantTurn := entity.ChatTurn{Role: entity.RoleAssistant, Content: reply}
	if err := srv.store.Append(ctx, sessionID, userTurn, assistantTurn); err != nil {
		return nil, errors.Wrap(err, "failed to append session turns")
	}

	return &usecase.ChatOutput{Reply: reply, SessionID: sessionID}, nil
}

// ClearSession removes the stored conversation history for the session.
func (srv *chatService) ClearSession(ctx context.Context, sessionID string) error {
	if err := srv.store.Clear(ctx, sessionID); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}

	srv.logger.Debug("Session cleared", slog.String("sessionID", sessionID))

	return nil
}

// buildContext produces the advisor persona turn, embedding the caller's
// profile object verbatim when one was supplied.
func (srv *chatService) buildContext(profile map[string]any) string {
	makeName := displayMake(srv.cfg.Catalog.Make)

	var b strings.Builder
	fmt.Fprintf(&b, "You are a helpful, concise financial and automotive advisor for %s shoppers.\n", makeName)
	fmt.Fprintf(&b, "Answer questions about financing options, credit impact, budgeting, and %s models.\n", makeName)
	b.WriteString("If asked for numbers, give ballpark estimates and call out assumptions.")

	if len(profile) > 0 {
		if encoded, err := json.MarshalIndent(profile, "", "  "); err == nil {
			b.WriteString("\n\nUser profile (for context):\n")
			b.Write(encoded)
			b.WriteString("\n\nGuidance:\n")
			b.WriteString("- Tailor answers to this user's profile when relevant.\n")
			b.WriteString("- If you don't know something, say so and suggest next steps.\n")
			b.WriteString("- Keep answers friendly and brief by default.")
		}
	}

	return b.String()
}
