package dto

// NearestRequest is the body of the nearest-spots lookup. Coordinates are
// pointers so that a missing field is distinguishable from a legitimate zero;
// the use case rejects nil or out-of-range coordinates with a dedicated code.
type NearestRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Limit     int      `json:"limit"`
}

// WithinRadiusRequest is the body of the radius search.
type WithinRadiusRequest struct {
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	RadiusMeters float64  `json:"radius_meters"`
	CuisineType  string   `json:"cuisine_type"`
}

// WithinBoundsRequest carries a polygon ring as [longitude, latitude] pairs.
type WithinBoundsRequest struct {
	Bounds [][]float64 `json:"bounds" validate:"required"`
}

// SearchRequest holds the query parameters for text search with facets.
type SearchRequest struct {
	Query       string `json:"q" query:"q"`
	CuisineType string `json:"cuisine_type" query:"cuisine_type"`
	MinRating   string `json:"min_rating" query:"min_rating"`
	PriceRange  string `json:"price_range" query:"price_range"`
}

// CreateFoodSpotRequest is the create/update payload for a food spot.
type CreateFoodSpotRequest struct {
	Name         string   `json:"name" validate:"required,max=200"`
	CuisineType  string   `json:"cuisine_type" validate:"required,oneof=italian chinese mexican japanese indian american fast_food cafe pizza burger seafood vegetarian thai mediterranean other"`
	Description  string   `json:"description"`
	Address      string   `json:"address" validate:"required,max=300"`
	Phone        string   `json:"phone" validate:"omitempty,max=20"`
	Website      string   `json:"website" validate:"omitempty,url,max=200"`
	Rating       float64  `json:"rating" validate:"omitempty,min=0,max=5"`
	PriceRange   string   `json:"price_range" validate:"required,oneof=€ €€ €€€ €€€€"`
	OpeningHours string   `json:"opening_hours" validate:"omitempty,max=100"`
	Latitude     *float64 `json:"latitude" validate:"required"`
	Longitude    *float64 `json:"longitude" validate:"required"`
}

// CreateReviewRequest is the payload for posting a review.
type CreateReviewRequest struct {
	FoodSpotID    int64   `json:"foodspot_id" validate:"required,min=1"`
	ReviewerName  string  `json:"reviewer_name" validate:"required,max=100"`
	ReviewerEmail *string `json:"reviewer_email" validate:"omitempty,email"`
	Rating        float64 `json:"rating" validate:"required,min=1,max=5"`
	Comment       string  `json:"comment" validate:"required,max=1000"`
}
