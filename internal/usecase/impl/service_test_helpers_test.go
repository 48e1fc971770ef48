package impl

import (
	"io"
	"log/slog"

	"drivematch/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestConfig pins PriceMin == PriceMax so fabricated prices are
// deterministic in tests.
func newTestConfig() *config.Config {
	return &config.Config{
		Cohere: &config.CohereConfig{
			Model:       "command-r-plus",
			Temperature: 0.6,
		},
		Catalog: &config.CatalogConfig{
			Make:      "toyota",
			MaxModels: 25,
			PriceMin:  30000,
			PriceMax:  30000,
		},
		ImageSearch: &config.ImageSearchConfig{
			FallbackURL: "https://images.example.com/fallback.jpg",
		},
		Chat: &config.ChatConfig{
			Store:      "memory",
			MaxHistory: 20,
		},
	}
}
