package impl

import (
	"context"
	"testing"

	"drivematch/internal/domain/entity"
	domainerrors "drivematch/internal/domain/errors"
	mockService "drivematch/internal/mocks/service"
	"drivematch/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recommendationTestFixture struct {
	catalog   *mockService.MockVehicleCatalog
	generator *mockService.MockTextGenerator
	images    *mockService.MockImageSearcher
	service   usecase.RecommendationUsecase
}

func createTestRecommendationService(t *testing.T) *recommendationTestFixture {
	catalog := mockService.NewMockVehicleCatalog(t)
	generator := mockService.NewMockTextGenerator(t)
	images := mockService.NewMockImageSearcher(t)

	service := NewRecommendationService(RecommendationServiceParams{
		Catalog:   catalog,
		Generator: generator,
		Images:    images,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return &recommendationTestFixture{
		catalog:   catalog,
		generator: generator,
		images:    images,
		service:   service,
	}
}

func testCatalogModels() []entity.CatalogModel {
	return []entity.CatalogModel{
		{Name: "Camry", Body: "Sedan", Year: "2024", Seats: 5},
		{Name: "Corolla", Body: "Sedan", Year: "2024", Seats: 5},
		{Name: "Highlander", Body: "SUV", Year: "2024", Seats: 7},
	}
}

func TestRecommendationService_Recommend_NameMatch(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()

	input := &usecase.RecommendInput{
		Income:        "55000",
		CreditScore:   "good",
		PreferredType: "sedan",
		Lifestyle: entity.Lifestyle{
			Seats: "5",
			Range: "long",
		},
	}

	narrative := "Based on your budget, the Camry is a great fit for daily commuting."

	fx.catalog.EXPECT().
		Models(ctx, "toyota").
		Return(testCatalogModels(), nil)

	fx.generator.EXPECT().
		Generate(ctx, mock.Anything, 0.6).
		Return(narrative, nil)

	fx.images.EXPECT().
		FindImage(ctx, "Toyota Camry car").
		Return("https://images.example.com/camry.jpg", nil)

	output, err := fx.service.Recommend(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)

	assert.Equal(t, narrative, output.Narrative)
	require.Len(t, output.Vehicles, 1)
	assert.Equal(t, "Toyota Camry", output.Vehicles[0].Name)
	assert.Equal(t, 5, output.Vehicles[0].Seats)
	assert.Equal(t, "long", output.Vehicles[0].Range)
	assert.Equal(t, 30000, output.Vehicles[0].Price)
	assert.Equal(t, "https://images.example.com/camry.jpg", output.Vehicles[0].Image)
}

func TestRecommendationService_Recommend_PromptContainsCandidates(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()

	input := &usecase.RecommendInput{
		Income:      "55000",
		CreditScore: "good",
	}

	var prompt string
	fx.catalog.EXPECT().
		Models(ctx, "toyota").
		Return(testCatalogModels(), nil)

	fx.generator.EXPECT().
		Generate(ctx, mock.Anything, 0.6).
		Run(func(_ context.Context, messages []entity.ChatTurn, _ float64) {
			require.Len(t, messages, 1)
			assert.Equal(t, entity.RoleUser, messages[0].Role)
			prompt = messages[0].Content
		}).
		Return("The Highlander suits you.", nil)

	fx.images.EXPECT().
		FindImage(ctx, "Toyota Highlander car").
		Return("https://images.example.com/highlander.jpg", nil)

	_, err := fx.service.Recommend(ctx, input)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Camry")
	assert.Contains(t, prompt, "Corolla")
	assert.Contains(t, prompt, "Highlander")
	assert.Contains(t, prompt, "Income: $55000")
	assert.Contains(t, prompt, "Credit Score: good")
}

func TestRecommendationService_Recommend_ScoringFallback(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()

	input := &usecase.RecommendInput{
		Income:        "35000",
		CreditScore:   "fair",
		PreferredType: "suv",
		Lifestyle: entity.Lifestyle{
			Seats: "5",
		},
	}

	fx.catalog.EXPECT().
		Models(ctx, "toyota").
		Return(testCatalogModels(), nil)

	// The narrative names no candidate, so the service falls back to scoring.
	fx.generator.EXPECT().
		Generate(ctx, mock.Anything, 0.6).
		Return("A compact crossover would fit your lifestyle well.", nil)

	fx.images.EXPECT().
		FindImage(ctx, mock.Anything).
		Return("", errors.New("quota exceeded")).
		Times(3)

	output, err := fx.service.Recommend(ctx, input)
	require.NoError(t, err)

	require.Len(t, output.Vehicles, 3)
	// The SUV wins the body-type bonus and ranks first.
	assert.Equal(t, "Toyota Highlander", output.Vehicles[0].Name)
	for _, model := range output.Vehicles {
		assert.Equal(t, "https://images.example.com/fallback.jpg", model.Image)
	}
}

func TestRecommendationService_Recommend_CatalogFailureDegrades(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()

	input := &usecase.RecommendInput{
		Income:      "55000",
		CreditScore: "good",
	}

	narrative := "Without a catalog I can still suggest looking at midsize sedans."

	fx.catalog.EXPECT().
		Models(ctx, "toyota").
		Return(nil, errors.New("upstream timeout"))

	fx.generator.EXPECT().
		Generate(ctx, mock.Anything, 0.6).
		Return(narrative, nil)

	output, err := fx.service.Recommend(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, narrative, output.Narrative)
	assert.Empty(t, output.Vehicles)
}

func TestRecommendationService_Recommend_UnknownCreditScoreBand(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()

	input := &usecase.RecommendInput{
		Income:      "55000",
		CreditScore: "platinum",
	}

	// No catalog, generation or image calls happen for a rejected band.
	output, err := fx.service.Recommend(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "platinum")
}

func TestRecommendationService_Recommend_CreditScoreBandIsCaseInsensitive(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()

	input := &usecase.RecommendInput{
		Income:      "55000",
		CreditScore: " Excellent ",
	}

	fx.catalog.EXPECT().
		Models(ctx, "toyota").
		Return(nil, nil)

	fx.generator.EXPECT().
		Generate(ctx, mock.Anything, 0.6).
		Return("Plenty of room in the budget.", nil)

	_, err := fx.service.Recommend(ctx, input)
	require.NoError(t, err)
}

func TestRecommendationService_Recommend_GenerationError(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()

	input := &usecase.RecommendInput{
		Income:      "55000",
		CreditScore: "good",
	}

	fx.catalog.EXPECT().
		Models(ctx, "toyota").
		Return(testCatalogModels(), nil)

	fx.generator.EXPECT().
		Generate(ctx, mock.Anything, 0.6).
		Return("", errors.New("api key invalid"))

	output, err := fx.service.Recommend(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "GENERATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "api key invalid")
}

func TestSelectByName_StripsMakeAndHybridSuffix(t *testing.T) {
	candidates := []entity.CandidateVehicle{
		{Name: "Toyota Prius Hybrid", Body: "Hatchback", Seats: 5, Price: 30000},
		{Name: "Sienna", Body: "Minivan", Seats: 8, Price: 30000},
	}

	picked := selectByName("The prius is the obvious pick here.", candidates, "toyota")
	require.Len(t, picked, 1)
	assert.Equal(t, "Toyota Prius Hybrid", picked[0].Name)
}

func TestSelectByName_CapsAtThreePicks(t *testing.T) {
	candidates := []entity.CandidateVehicle{
		{Name: "Camry", Body: "Sedan", Seats: 5, Price: 30000},
		{Name: "Corolla", Body: "Sedan", Seats: 5, Price: 30000},
		{Name: "Highlander", Body: "SUV", Seats: 7, Price: 30000},
		{Name: "Sienna", Body: "Minivan", Seats: 8, Price: 30000},
	}

	narrative := "Camry, Corolla, Highlander and Sienna all work."
	picked := selectByName(narrative, candidates, "toyota")
	assert.Len(t, picked, 3)
}

func TestScoreCandidates_IncomeBand(t *testing.T) {
	input := &usecase.RecommendInput{
		Income: "30000",
		Lifestyle: entity.Lifestyle{
			Seats: "5",
		},
	}

	candidates := []entity.CandidateVehicle{
		{Name: "Expensive", Body: "SUV", Seats: 7, Price: 44000},
		{Name: "Affordable", Body: "Sedan", Seats: 5, Price: 25000},
	}

	picked := scoreCandidates(input, candidates)
	require.Len(t, picked, 2)
	// The low-income price bonus pushes the cheaper model first.
	assert.Equal(t, "Affordable", picked[0].Name)
}
