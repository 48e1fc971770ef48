package service

import (
	"context"

	"drivematch/internal/domain/entity"
)

// VehicleCatalog is the contract for the external car-catalog API.
// Implementations truncate the raw list to a bounded number of entries and
// soft-fail on unparseable responses by returning an empty slice.
type VehicleCatalog interface {
	// Models returns the catalog's model list for the given make.
	Models(ctx context.Context, make string) ([]entity.CatalogModel, error)
}
