// Package entity contains the core business objects of the project.
package entity

// CatalogModel is a raw vehicle record as returned by the external car-catalog
// API, before any pricing or selection is applied.
type CatalogModel struct {
	Name  string `json:"name"`  // Model name, e.g. "Camry", "Avalon Hybrid".
	Body  string `json:"type"`  // Body style reported by the catalog, e.g. "Sedan".
	Year  string `json:"year"`  // Model year as reported, "N/A" when missing.
	Seats int    `json:"seats"` // Seat count, defaulted to 5 when the catalog omits it.
}

// CandidateVehicle is a catalog model prepared for recommendation: same fields
// plus a demo price fabricated within a configured band, since the catalog
// carries no pricing data.
type CandidateVehicle struct {
	Name  string `json:"name"`
	Body  string `json:"type"`
	Year  string `json:"year"`
	Seats int    `json:"seats"`
	Price int    `json:"price"`
}

// RecommendedVehicle is one pick in the final recommendation, enriched with a
// representative image URL.
type RecommendedVehicle struct {
	Name  string `json:"name"`  // Full display name including the make, e.g. "Toyota Camry".
	Seats int    `json:"seats"`
	Range string `json:"range"` // Mirrors the user's requested range preference.
	Price int    `json:"price"`
	Image string `json:"image"` // Search result or the configured fallback, never empty.
}

// RecommendationResult is the per-request output of the recommendation flow.
// It is built once, returned, and discarded; nothing is cached.
type RecommendationResult struct {
	Narrative string               `json:"recommendation"`
	Vehicles  []RecommendedVehicle `json:"models"`
}
