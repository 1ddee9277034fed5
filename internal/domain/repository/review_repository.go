package repository

import (
	"context"

	"github.com/foodspot-service/internal/domain"
)

// ReviewRepository defines the review store. Listings serve approved reviews
// only, newest first.
type ReviewRepository interface {
	// ListApproved returns all approved reviews.
	ListApproved(ctx context.Context) ([]*domain.Review, error)

	// ListByFoodSpot returns approved reviews for one spot.
	ListByFoodSpot(ctx context.Context, foodspotID int64) ([]*domain.Review, error)

	// Create persists a review and fills ID and timestamps.
	Create(ctx context.Context, review *domain.Review) error
}
