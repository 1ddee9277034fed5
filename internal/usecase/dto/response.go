package dto

import (
	"time"

	"github.com/foodspot-service/internal/domain"
	"github.com/foodspot-service/internal/pkg/utils"
)

// SpotResponse is the list-item representation of a food spot, enriched with
// the approved-review rollup. Distance fields are set only by spatial
// queries.
type SpotResponse struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	CuisineType    string   `json:"cuisine_type"`
	CuisineDisplay string   `json:"cuisine_display"`
	Description    string   `json:"description"`
	Address        string   `json:"address"`
	Phone          string   `json:"phone"`
	Rating         float64  `json:"rating"`
	PriceRange     string   `json:"price_range"`
	PriceDisplay   string   `json:"price_display"`
	OpeningHours   string   `json:"opening_hours"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	ReviewCount    int      `json:"review_count"`
	AverageRating  float64  `json:"average_rating"`
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
	DistanceKm     *float64 `json:"distance_km,omitempty"`
}

// SpotDetailResponse extends SpotResponse with fields only the detail view
// exposes.
type SpotDetailResponse struct {
	SpotResponse
	Website   string    `json:"website"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReviewResponse is the serialized form of a review.
type ReviewResponse struct {
	ID            int64     `json:"id"`
	FoodSpotID    int64     `json:"foodspot_id"`
	FoodSpotName  string    `json:"foodspot_name,omitempty"`
	ReviewerName  string    `json:"reviewer_name"`
	ReviewerEmail *string   `json:"reviewer_email,omitempty"`
	Rating        float64   `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewSpotResponse builds a SpotResponse from a spot and its aggregate. The
// fallback when the spot has no approved reviews is the spot's own stored
// rating with a zero count.
func NewSpotResponse(spot *domain.FoodSpot, agg *domain.ReviewAggregate) SpotResponse {
	resp := SpotResponse{
		ID:             spot.ID,
		Name:           spot.Name,
		CuisineType:    spot.CuisineType,
		CuisineDisplay: domain.CuisineDisplay(spot.CuisineType),
		Description:    spot.Description,
		Address:        spot.Address,
		Phone:          spot.Phone,
		Rating:         spot.Rating,
		PriceRange:     spot.PriceRange,
		PriceDisplay:   domain.PriceDisplay(spot.PriceRange),
		OpeningHours:   spot.OpeningHours,
		Latitude:       spot.Lat,
		Longitude:      spot.Lon,
		ReviewCount:    0,
		AverageRating:  spot.Rating,
	}
	if agg != nil {
		resp.ReviewCount = agg.ReviewCount
		resp.AverageRating = utils.Round2(agg.AverageRating)
	}
	return resp
}

// NewSpotResponseWithDistance adds rounded distance fields to the list-item
// representation.
func NewSpotResponseWithDistance(spot *domain.SpotWithDistance, agg *domain.ReviewAggregate) SpotResponse {
	resp := NewSpotResponse(&spot.FoodSpot, agg)
	meters := utils.Round2(spot.DistanceMeters)
	km := utils.Round2(spot.DistanceMeters / 1000)
	resp.DistanceMeters = &meters
	resp.DistanceKm = &km
	return resp
}

// NewSpotDetailResponse builds the detail view of a spot.
func NewSpotDetailResponse(spot *domain.FoodSpot, agg *domain.ReviewAggregate) SpotDetailResponse {
	return SpotDetailResponse{
		SpotResponse: NewSpotResponse(spot, agg),
		Website:      spot.Website,
		IsActive:     spot.IsActive,
		CreatedAt:    spot.CreatedAt,
		UpdatedAt:    spot.UpdatedAt,
	}
}

// NewReviewResponse serializes a review. foodspotName may be empty for
// listings scoped to a single spot.
func NewReviewResponse(review *domain.Review, foodspotName string) ReviewResponse {
	return ReviewResponse{
		ID:            review.ID,
		FoodSpotID:    review.FoodSpotID,
		FoodSpotName:  foodspotName,
		ReviewerName:  review.ReviewerName,
		ReviewerEmail: review.ReviewerEmail,
		Rating:        review.Rating,
		Comment:       review.Comment,
		CreatedAt:     review.CreatedAt,
	}
}
