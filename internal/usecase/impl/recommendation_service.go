// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"drivematch/config"
	"drivematch/internal/domain/entity"
	domainerrors "drivematch/internal/domain/errors"
	"drivematch/internal/domain/service"
	"drivematch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	maxPicks     = 3
	defaultSeats = 5
	defaultRange = "medium"
)

// recommendationService implements the RecommendationUsecase interface.
type recommendationService struct {
	catalog   service.VehicleCatalog
	generator service.TextGenerator
	images    service.ImageSearcher
	cfg       *config.Config
	logger    *slog.Logger
}

// RecommendationServiceParams holds dependencies for the recommendation service, injected by Fx.
type RecommendationServiceParams struct {
	fx.In

	Catalog   service.VehicleCatalog
	Generator service.TextGenerator
	Images    service.ImageSearcher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewRecommendationService is the constructor for recommendationService.
func NewRecommendationService(params RecommendationServiceParams) usecase.RecommendationUsecase {
	return &recommendationService{
		catalog:   params.Catalog,
		generator: params.Generator,
		images:    params.Images,
		cfg:       params.Config,
		logger:    params.Logger,
	}
}

// Recommend orchestrates one recommendation request: catalog fetch, a single
// text-generation call, name extraction (with a deterministic scoring
// fallback) and image enrichment.
func (srv *recommendationService) Recommend(ctx context.Context, input *usecase.RecommendInput) (*usecase.RecommendOutput, error) {
	band := entity.CreditScore(strings.ToLower(strings.TrimSpace(input.CreditScore)))
	if !band.IsValid() {
		return nil, errors.Wrap(
			domainerrors.ErrValidationFailed.WithDetails("unknown credit score band: "+input.CreditScore),
			"invalid credit score")
	}

	catalogCfg := srv.cfg.Catalog

	// Catalog failures degrade to an empty candidate set rather than failing
	// the request.
	models, err := srv.catalog.Models(ctx, catalogCfg.Make)
	if err != nil {
		srv.logger.Warn("Catalog fetch failed, continuing with empty candidate set",
			slog.String("make", catalogCfg.Make),
			slog.Any("error", err),
		)
		models = nil
	}

	candidates := srv.buildCandidates(models)

	prompt := srv.buildPrompt(input, candidates)
	narrative, err := srv.generator.Generate(ctx, []entity.ChatTurn{
		{Role: entity.RoleUser, Content: prompt},
	}, srv.cfg.Cohere.Temperature)
	if err != nil {
		srv.logger.Error("Text generation failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrGenerationFailed.WithDetails(err.Error()), "failed to generate recommendation")
	}

	picked := selectByName(narrative, candidates, catalogCfg.Make)
	if len(picked) == 0 {
		srv.logger.Info("No candidate names matched in narrative, falling back to local scoring")
		picked = scoreCandidates(input, candidates)
	}

	return &usecase.RecommendOutput{
		RecommendationResult: entity.RecommendationResult{
			Narrative: narrative,
			Vehicles:  srv.enrich(ctx, input, picked),
		},
	}, nil
}

// buildCandidates turns raw catalog models into priced candidates. Prices are
// fabricated within the configured band since the catalog has no pricing data.
func (srv *recommendationService) buildCandidates(models []entity.CatalogModel) []entity.CandidateVehicle {
	catalogCfg := srv.cfg.Catalog
	candidates := make([]entity.CandidateVehicle, 0, len(models))

	for _, m := range models {
		seats := m.Seats
		if seats <= 0 {
			seats = defaultSeats
		}
		year := m.Year
		if year == "" {
			year = "N/A"
		}
		body := m.Body
		if body == "" {
			body = "Unknown"
		}

		candidates = append(candidates, entity.CandidateVehicle{
			Name:  m.Name,
			Body:  body,
			Year:  year,
			Seats: seats,
			Price: randomPrice(catalogCfg.PriceMin, catalogCfg.PriceMax),
		})
	}

	return candidates
}

func (srv *recommendationService) buildPrompt(input *usecase.RecommendInput, candidates []entity.CandidateVehicle) string {
	type promptModel struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}

	promptModels := make([]promptModel, 0, len(candidates))
	for _, c := range candidates {
		promptModels = append(promptModels, promptModel{Name: c.Name, Type: c.Body})
	}
	modelList, err := json.MarshalIndent(promptModels, "", "  ")
	if err != nil {
		modelList = []byte("[]")
	}

	accessories := strings.Join(input.Lifestyle.Accessories, ", ")
	if accessories == "" {
		accessories = "None"
	}

	makeName := displayMake(srv.cfg.Catalog.Make)

	var b strings.Builder
	fmt.Fprintf(&b, "You are a helpful automotive expert recommending %s models for users.\n\n", makeName)
	b.WriteString("User info:\n")
	fmt.Fprintf(&b, "- Income: $%s\n", input.Income)
	fmt.Fprintf(&b, "- Credit Score: %s\n", input.CreditScore)
	fmt.Fprintf(&b, "- Preferred Vehicle Type: %s\n", input.PreferredType)
	fmt.Fprintf(&b, "- Seats: %s\n", input.Lifestyle.Seats)
	fmt.Fprintf(&b, "- Range: %s\n", input.Lifestyle.Range)
	fmt.Fprintf(&b, "- Accessories: %s\n", accessories)
	fmt.Fprintf(&b, "- Preferred Color: %s\n\n", input.Lifestyle.CarColor)
	fmt.Fprintf(&b, "Available %s models (choose only from these by exact name):\n%s\n\n", makeName, modelList)
	b.WriteString("Return a short explanation and mention the chosen model names exactly as shown above.\n")
	b.WriteString("Pick 2-3 models max.")

	return b.String()
}

// enrich resolves one image per pick, substituting the configured fallback on
// any lookup failure. Enrichment never fails the request.
func (srv *recommendationService) enrich(ctx context.Context, input *usecase.RecommendInput, picks []entity.CandidateVehicle) []entity.RecommendedVehicle {
	makeName := displayMake(srv.cfg.Catalog.Make)
	rangePref := input.Lifestyle.Range
	if rangePref == "" {
		rangePref = defaultRange
	}

	vehicles := make([]entity.RecommendedVehicle, 0, len(picks))
	for _, pick := range picks {
		image, err := srv.images.FindImage(ctx, fmt.Sprintf("%s %s car", makeName, pick.Name))
		if err != nil || image == "" {
			if err != nil {
				srv.logger.Warn("Image lookup failed, using fallback",
					slog.String("model", pick.Name),
					slog.Any("error", err),
				)
			}
			image = srv.cfg.ImageSearch.FallbackURL
		}

		vehicles = append(vehicles, entity.RecommendedVehicle{
			Name:  makeName + " " + pick.Name,
			Seats: pick.Seats,
			Range: rangePref,
			Price: pick.Price,
			Image: image,
		})
	}

	return vehicles
}

// selectByName matches candidate names as substrings of the narrative. It only
// ever selects real candidate names, so a hallucinated model can never reach
// the response.
func selectByName(narrative string, candidates []entity.CandidateVehicle, carMake string) []entity.CandidateVehicle {
	text := strings.ToLower(narrative)
	makePrefix := strings.ToLower(carMake) + " "

	seen := make(map[string]bool, maxPicks)
	picked := make([]entity.CandidateVehicle, 0, maxPicks)

	for _, candidate := range candidates {
		name := strings.ToLower(candidate.Name)
		name = strings.TrimPrefix(name, makePrefix)
		name = strings.TrimSuffix(name, " hybrid")
		if name == "" || seen[candidate.Name] {
			continue
		}

		// Matches "camry", "toyota camry", "camry hybrid" and similar.
		if strings.Contains(text, name) {
			seen[candidate.Name] = true
			picked = append(picked, candidate)
			if len(picked) == maxPicks {
				break
			}
		}
	}

	return picked
}

// scoreCandidates is the deterministic fallback when the narrative names no
// candidates: body-type match, seat fit and an income-scaled price bonus,
// top three by score. It guarantees a non-empty pick list whenever candidates
// exist.
func scoreCandidates(input *usecase.RecommendInput, candidates []entity.CandidateVehicle) []entity.CandidateVehicle {
	seatNeed := parseIntDefault(input.Lifestyle.Seats, defaultSeats)
	typePref := strings.ToLower(input.PreferredType)
	income := parseFloatDefault(input.Income, 0)

	type scored struct {
		candidate entity.CandidateVehicle
		score     int
	}

	ranked := make([]scored, 0, len(candidates))
	for _, candidate := range candidates {
		score := 0
		if typePref != "" && strings.Contains(strings.ToLower(candidate.Body), typePref) {
			score += 2
		}
		if candidate.Seats >= seatNeed {
			score++
		}
		switch {
		case income < 40000 && candidate.Price < 28000:
			score += 2
		case income < 70000 && candidate.Price < 35000:
			score++
		}
		ranked = append(ranked, scored{candidate: candidate, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	picked := make([]entity.CandidateVehicle, 0, maxPicks)
	for _, r := range ranked {
		picked = append(picked, r.candidate)
		if len(picked) == maxPicks {
			break
		}
	}

	return picked
}

func randomPrice(min, max int) int {
	if max <= min {
		return min
	}

	return min + rand.IntN(max-min+1)
}

func parseIntDefault(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fallback
	}

	return v
}

func parseFloatDefault(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fallback
	}

	return v
}

// displayMake capitalizes the configured make for prompt and display purposes,
// e.g. "toyota" -> "Toyota".
func displayMake(carMake string) string {
	runes := []rune(carMake)
	if len(runes) == 0 {
		return carMake
	}
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}
