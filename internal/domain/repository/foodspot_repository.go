package repository

import (
	"context"

	"github.com/foodspot-service/internal/domain"
)

// FoodSpotRepository defines the spot store. All read methods are scoped to
// active spots.
type FoodSpotRepository interface {
	// GetByID returns an active spot by ID.
	GetByID(ctx context.Context, id int64) (*domain.FoodSpot, error)

	// List returns active spots, optionally filtered by cuisine, ordered by
	// rating descending then name.
	List(ctx context.Context, cuisineType string) ([]*domain.FoodSpot, error)

	// Create persists a new spot and fills ID and timestamps.
	Create(ctx context.Context, spot *domain.FoodSpot) error

	// Update rewrites an existing active spot.
	Update(ctx context.Context, spot *domain.FoodSpot) error

	// Deactivate soft-deletes a spot.
	Deactivate(ctx context.Context, id int64) error

	// Nearest returns the limit closest active spots ordered by geodesic
	// distance from the query point.
	Nearest(ctx context.Context, lat, lon float64, limit int) ([]*domain.SpotWithDistance, error)

	// WithinRadius returns active spots within radiusMeters of the query
	// point, ordered by distance. cuisineType narrows when non-empty.
	WithinRadius(ctx context.Context, lat, lon, radiusMeters float64, cuisineType string) ([]*domain.SpotWithDistance, error)

	// WithinBounds returns active spots covered by the closed polygon ring,
	// boundary inclusive.
	WithinBounds(ctx context.Context, ring []domain.LatLon) ([]*domain.FoodSpot, error)

	// Search matches the query case-insensitively against name, description
	// or address, then applies the filter.
	Search(ctx context.Context, query string, filter domain.SearchFilter) ([]*domain.FoodSpot, error)

	// GetReviewAggregates returns approved-review rollups keyed by spot ID in
	// a single grouped query. Spots without approved reviews have no entry.
	GetReviewAggregates(ctx context.Context, ids []int64) (map[int64]domain.ReviewAggregate, error)
}
