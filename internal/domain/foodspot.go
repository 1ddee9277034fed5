package domain

import "time"

// Cuisine category codes accepted by the directory.
const (
	CuisineItalian       = "italian"
	CuisineChinese       = "chinese"
	CuisineMexican       = "mexican"
	CuisineJapanese      = "japanese"
	CuisineIndian        = "indian"
	CuisineAmerican      = "american"
	CuisineFastFood      = "fast_food"
	CuisineCafe          = "cafe"
	CuisinePizza         = "pizza"
	CuisineBurger        = "burger"
	CuisineSeafood       = "seafood"
	CuisineVegetarian    = "vegetarian"
	CuisineThai          = "thai"
	CuisineMediterranean = "mediterranean"
	CuisineOther         = "other"
)

// Price tiers, ascending.
const (
	PriceBudget        = "€"
	PriceModerate      = "€€"
	PriceExpensive     = "€€€"
	PriceVeryExpensive = "€€€€"
)

// CuisineCategory is a {value, label} pair as served by the categories
// endpoint.
type CuisineCategory struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var cuisineCategories = []CuisineCategory{
	{CuisineItalian, "Italian"},
	{CuisineChinese, "Chinese"},
	{CuisineMexican, "Mexican"},
	{CuisineJapanese, "Japanese"},
	{CuisineIndian, "Indian"},
	{CuisineAmerican, "American"},
	{CuisineFastFood, "Fast Food"},
	{CuisineCafe, "Cafe/Coffee Shop"},
	{CuisinePizza, "Pizza"},
	{CuisineBurger, "Burgers"},
	{CuisineSeafood, "Seafood"},
	{CuisineVegetarian, "Vegetarian/Vegan"},
	{CuisineThai, "Thai"},
	{CuisineMediterranean, "Mediterranean"},
	{CuisineOther, "Other"},
}

var priceLabels = map[string]string{
	PriceBudget:        "Budget (€)",
	PriceModerate:      "Moderate (€€)",
	PriceExpensive:     "Expensive (€€€)",
	PriceVeryExpensive: "Very Expensive (€€€€)",
}

// CuisineCategories returns the categories in declaration order.
func CuisineCategories() []CuisineCategory {
	out := make([]CuisineCategory, len(cuisineCategories))
	copy(out, cuisineCategories)
	return out
}

// CuisineDisplay maps a category code to its human label. Unknown codes are
// returned as-is.
func CuisineDisplay(code string) string {
	for _, c := range cuisineCategories {
		if c.Value == code {
			return c.Label
		}
	}
	return code
}

// IsValidCuisine reports whether code is one of the accepted categories.
func IsValidCuisine(code string) bool {
	for _, c := range cuisineCategories {
		if c.Value == code {
			return true
		}
	}
	return false
}

// PriceDisplay maps a price tier to its human label. Unknown tiers are
// returned as-is.
func PriceDisplay(tier string) string {
	if label, ok := priceLabels[tier]; ok {
		return label
	}
	return tier
}

// FoodSpot is a food establishment with a WGS84 point location. Soft delete
// only: query paths always filter IsActive.
type FoodSpot struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	CuisineType  string    `json:"cuisine_type" db:"cuisine_type"`
	Description  string    `json:"description" db:"description"`
	Address      string    `json:"address" db:"address"`
	Phone        string    `json:"phone" db:"phone"`
	Website      string    `json:"website" db:"website"`
	Rating       float64   `json:"rating" db:"rating"`
	PriceRange   string    `json:"price_range" db:"price_range"`
	OpeningHours string    `json:"opening_hours" db:"opening_hours"`
	Lat          float64   `json:"latitude" db:"lat"`
	Lon          float64   `json:"longitude" db:"lon"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// SpotWithDistance is a FoodSpot plus its geodesic distance from a query
// point, in meters.
type SpotWithDistance struct {
	FoodSpot
	DistanceMeters float64 `db:"distance"`
}

// ReviewAggregate holds the approved-review rollup for one spot. Absence of
// an aggregate (not a zero value) means the spot has no approved reviews.
type ReviewAggregate struct {
	ReviewCount   int     `db:"review_count"`
	AverageRating float64 `db:"average_rating"`
}

// SearchFilter narrows a text search. MinRating is nil when absent or
// unparsable; the unparsable case is deliberately ignored, not rejected.
type SearchFilter struct {
	CuisineType string
	MinRating   *float64
	PriceRange  string
}
