package domain

// Statistics is the aggregate snapshot over active spots.
type Statistics struct {
	TotalSpots         int                `json:"total_spots"`
	AverageRating      float64            `json:"average_rating"`
	ByCuisine          map[string]int     `json:"by_cuisine"`
	ByPriceRange       map[string]int     `json:"by_price_range"`
	RatingDistribution RatingDistribution `json:"rating_distribution"`
}

// RatingDistribution buckets are disjoint: a 5.0 spot lands only in Five,
// never in FourToFive, because that bucket is upper-bound exclusive.
type RatingDistribution struct {
	Five        int `json:"5"`
	FourToFive  int `json:"4-5"`
	ThreeToFour int `json:"3-4"`
	BelowThree  int `json:"below_3"`
}
