// Package service defines interfaces for external collaborators the
// application depends on, implemented under internal/infra.
package service

import (
	"context"

	"drivematch/internal/domain/entity"
)

// TextGenerator is the contract for the external text-generation (LLM) API.
// A single call, no retries: failures surface to the caller as request errors.
type TextGenerator interface {
	// Generate sends the ordered message list and returns the generated
	// narrative as plain text.
	Generate(ctx context.Context, messages []entity.ChatTurn, temperature float64) (string, error)
}
