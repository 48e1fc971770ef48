// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"drivematch/internal/domain/entity"
)

// --- Input DTOs ---

// RecommendInput carries the quiz answers for one recommendation request.
// The quiz frontend submits numbers as strings, so income stays a string and
// is parsed inside the service. CreditScore must be one of the
// entity.CreditScore bands.
type RecommendInput struct {
	Income        string           `json:"income" validate:"required"`
	CreditScore   string           `json:"creditScore" validate:"required"`
	PreferredType string           `json:"preferredType"`
	Lifestyle     entity.Lifestyle `json:"lifestyle"`
}

// --- Output DTOs ---

// RecommendOutput is the response of one recommendation request.
type RecommendOutput struct {
	entity.RecommendationResult
}

// RecommendationUsecase orchestrates catalog fetch, text generation and image
// enrichment into a single recommendation response.
type RecommendationUsecase interface {
	Recommend(ctx context.Context, input *RecommendInput) (*RecommendOutput, error)
}
