// Package google implements the ImageSearcher contract using the Google
// Custom Search API in image mode.
package google

import (
	"context"
	"log/slog"
	"time"

	"drivematch/config"
	"drivematch/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// imageSearcher wraps the Custom Search service restricted to a single
// search-engine id.
type imageSearcher struct {
	svc      *customsearch.Service
	engineID string
	timeout  time.Duration
	logger   *slog.Logger
}

// disabledSearcher is used when no API key is configured; every lookup fails,
// which callers turn into the fallback image.
type disabledSearcher struct{}

func (disabledSearcher) FindImage(ctx context.Context, query string) (string, error) {
	return "", errors.New("image search is not configured")
}

// New is the constructor for the image searcher. Without an API key it
// returns a disabled implementation so the recommendation flow still works in
// local development.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.ImageSearcher, error) {
	searchCfg := cfg.ImageSearch
	if searchCfg.APIKey == "" || searchCfg.SearchEngineID == "" {
		logger.Info("Image search not configured, recommendations will use the fallback image")

		return disabledSearcher{}, nil
	}

	svc, err := customsearch.NewService(ctx, option.WithAPIKey(searchCfg.APIKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create custom search service")
	}

	return &imageSearcher{
		svc:      svc,
		engineID: searchCfg.SearchEngineID,
		timeout:  searchCfg.Timeout,
		logger:   logger,
	}, nil
}

// FindImage returns the first image hit for the query.
func (s *imageSearcher) FindImage(ctx context.Context, query string) (string, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.svc.Cse.List().
		Cx(s.engineID).
		SearchType("image").
		Q(query).
		Num(1).
		Context(lookupCtx).
		Do()
	if err != nil {
		return "", errors.Wrapf(err, "image search failed for %q", query)
	}

	if len(result.Items) == 0 || result.Items[0].Link == "" {
		return "", errors.Errorf("image search returned no results for %q", query)
	}

	return result.Items[0].Link, nil
}
