package service

import "context"

// ImageSearcher is the contract for the external image-search API.
// Lookup failures are cosmetic: callers substitute a fallback URL and never
// propagate the error.
type ImageSearcher interface {
	// FindImage returns one representative image URL for the query.
	FindImage(ctx context.Context, query string) (string, error)
}
