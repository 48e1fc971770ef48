// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"drivematch/internal/delivery/http/response"
	"drivematch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecommendHandler holds dependencies for the recommendation endpoint.
type RecommendHandler struct {
	uc     usecase.RecommendationUsecase
	logger *slog.Logger
}

// NewRecommendHandler is the constructor for RecommendHandler, injected by Fx.
func NewRecommendHandler(uc usecase.RecommendationUsecase, logger *slog.Logger) *RecommendHandler {
	return &RecommendHandler{
		uc:     uc,
		logger: logger,
	}
}

// Recommend handles the vehicle recommendation request.
func (h *RecommendHandler) Recommend(c echo.Context) error {
	var input *usecase.RecommendInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recommendation input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "income and creditScore are required")
	}

	output, err := h.uc.Recommend(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Recommendation generated successfully")
}
