package usecase

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/foodspot-service/internal/domain"
	"github.com/foodspot-service/internal/domain/repository"
	"github.com/foodspot-service/internal/pkg/errors"
	"github.com/foodspot-service/internal/pkg/utils"
	"github.com/foodspot-service/internal/pkg/validator"
	"github.com/foodspot-service/internal/usecase/dto"
)

const (
	defaultNearestLimit = 10
	defaultRadiusMeters = 1000.0
)

// FoodSpotUsecase implements directory listings, spatial queries and text
// search over food spots. Every listing is enriched with the approved-review
// rollup fetched in one grouped query.
type FoodSpotUsecase struct {
	spotRepo repository.FoodSpotRepository
	logger   *zap.Logger
}

func NewFoodSpotUsecase(spotRepo repository.FoodSpotRepository, logger *zap.Logger) *FoodSpotUsecase {
	return &FoodSpotUsecase{
		spotRepo: spotRepo,
		logger:   logger,
	}
}

// List returns active spots, optionally narrowed by cuisine.
func (u *FoodSpotUsecase) List(ctx context.Context, cuisineType string) ([]dto.SpotResponse, error) {
	spots, err := u.spotRepo.List(ctx, cuisineType)
	if err != nil {
		return nil, err
	}
	return u.enrichSpots(ctx, spots)
}

// GetByID returns the detail view of an active spot.
func (u *FoodSpotUsecase) GetByID(ctx context.Context, id int64) (*dto.SpotDetailResponse, error) {
	spot, err := u.spotRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	aggs, err := u.spotRepo.GetReviewAggregates(ctx, []int64{spot.ID})
	if err != nil {
		return nil, err
	}

	resp := dto.NewSpotDetailResponse(spot, lookupAggregate(aggs, spot.ID))
	return &resp, nil
}

// Create validates and persists a new spot.
func (u *FoodSpotUsecase) Create(ctx context.Context, req *dto.CreateFoodSpotRequest) (*dto.SpotDetailResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	if !utils.ValidateCoordinates(*req.Latitude, *req.Longitude) {
		return nil, errors.ErrInvalidCoordinates
	}

	spot := &domain.FoodSpot{
		Name:         req.Name,
		CuisineType:  req.CuisineType,
		Description:  req.Description,
		Address:      req.Address,
		Phone:        req.Phone,
		Website:      req.Website,
		Rating:       req.Rating,
		PriceRange:   req.PriceRange,
		OpeningHours: req.OpeningHours,
		Lat:          *req.Latitude,
		Lon:          *req.Longitude,
		IsActive:     true,
	}

	if err := u.spotRepo.Create(ctx, spot); err != nil {
		return nil, err
	}

	u.logger.Info("Food spot created",
		zap.Int64("id", spot.ID),
		zap.String("name", spot.Name))

	resp := dto.NewSpotDetailResponse(spot, nil)
	return &resp, nil
}

// Update validates and rewrites an existing spot.
func (u *FoodSpotUsecase) Update(ctx context.Context, id int64, req *dto.CreateFoodSpotRequest) (*dto.SpotDetailResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	if !utils.ValidateCoordinates(*req.Latitude, *req.Longitude) {
		return nil, errors.ErrInvalidCoordinates
	}

	spot := &domain.FoodSpot{
		ID:           id,
		Name:         req.Name,
		CuisineType:  req.CuisineType,
		Description:  req.Description,
		Address:      req.Address,
		Phone:        req.Phone,
		Website:      req.Website,
		Rating:       req.Rating,
		PriceRange:   req.PriceRange,
		OpeningHours: req.OpeningHours,
		Lat:          *req.Latitude,
		Lon:          *req.Longitude,
		IsActive:     true,
	}

	if err := u.spotRepo.Update(ctx, spot); err != nil {
		return nil, err
	}

	aggs, err := u.spotRepo.GetReviewAggregates(ctx, []int64{spot.ID})
	if err != nil {
		return nil, err
	}

	resp := dto.NewSpotDetailResponse(spot, lookupAggregate(aggs, spot.ID))
	return &resp, nil
}

// Deactivate soft-deletes a spot.
func (u *FoodSpotUsecase) Deactivate(ctx context.Context, id int64) error {
	if err := u.spotRepo.Deactivate(ctx, id); err != nil {
		return err
	}

	u.logger.Info("Food spot deactivated", zap.Int64("id", id))
	return nil
}

// Categories returns the cuisine categories in declaration order.
func (u *FoodSpotUsecase) Categories() []domain.CuisineCategory {
	return domain.CuisineCategories()
}

// Nearest returns the limit closest spots to the query point, closest first.
func (u *FoodSpotUsecase) Nearest(ctx context.Context, req *dto.NearestRequest) ([]dto.SpotResponse, error) {
	if req.Latitude == nil || req.Longitude == nil {
		return nil, errors.ErrInvalidCoordinates
	}
	if !utils.ValidateCoordinates(*req.Latitude, *req.Longitude) {
		return nil, errors.ErrInvalidCoordinates
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultNearestLimit
	}

	spots, err := u.spotRepo.Nearest(ctx, *req.Latitude, *req.Longitude, limit)
	if err != nil {
		return nil, err
	}
	return u.enrichSpotsWithDistance(ctx, spots)
}

// WithinRadius returns spots inside the radius, closest first. The radius
// defaults to one kilometer.
func (u *FoodSpotUsecase) WithinRadius(ctx context.Context, req *dto.WithinRadiusRequest) ([]dto.SpotResponse, error) {
	if req.Latitude == nil || req.Longitude == nil {
		return nil, errors.ErrInvalidCoordinates
	}
	if !utils.ValidateCoordinates(*req.Latitude, *req.Longitude) {
		return nil, errors.ErrInvalidCoordinates
	}

	radius := req.RadiusMeters
	if radius <= 0 {
		radius = defaultRadiusMeters
	}

	spots, err := u.spotRepo.WithinRadius(ctx, *req.Latitude, *req.Longitude, radius, req.CuisineType)
	if err != nil {
		return nil, err
	}
	return u.enrichSpotsWithDistance(ctx, spots)
}

// WithinBounds returns spots covered by the polygon, boundary inclusive.
func (u *FoodSpotUsecase) WithinBounds(ctx context.Context, req *dto.WithinBoundsRequest) ([]dto.SpotResponse, error) {
	ring, err := domain.RingFromBounds(req.Bounds)
	if err != nil {
		return nil, err
	}

	spots, err := u.spotRepo.WithinBounds(ctx, ring)
	if err != nil {
		return nil, err
	}
	return u.enrichSpots(ctx, spots)
}

// Search runs the text search with facet filters. A blank query is rejected;
// an unparsable min_rating is silently ignored.
func (u *FoodSpotUsecase) Search(ctx context.Context, req *dto.SearchRequest) ([]dto.SpotResponse, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, errors.ErrInvalidQuery
	}

	filter := domain.SearchFilter{
		CuisineType: req.CuisineType,
		PriceRange:  req.PriceRange,
	}
	if req.MinRating != "" {
		if v, err := strconv.ParseFloat(req.MinRating, 64); err == nil {
			filter.MinRating = &v
		}
	}

	spots, err := u.spotRepo.Search(ctx, query, filter)
	if err != nil {
		return nil, err
	}
	return u.enrichSpots(ctx, spots)
}

func (u *FoodSpotUsecase) enrichSpots(ctx context.Context, spots []*domain.FoodSpot) ([]dto.SpotResponse, error) {
	ids := make([]int64, len(spots))
	for i, s := range spots {
		ids[i] = s.ID
	}

	aggs, err := u.spotRepo.GetReviewAggregates(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SpotResponse, len(spots))
	for i, s := range spots {
		out[i] = dto.NewSpotResponse(s, lookupAggregate(aggs, s.ID))
	}
	return out, nil
}

func (u *FoodSpotUsecase) enrichSpotsWithDistance(ctx context.Context, spots []*domain.SpotWithDistance) ([]dto.SpotResponse, error) {
	ids := make([]int64, len(spots))
	for i, s := range spots {
		ids[i] = s.ID
	}

	aggs, err := u.spotRepo.GetReviewAggregates(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SpotResponse, len(spots))
	for i, s := range spots {
		out[i] = dto.NewSpotResponseWithDistance(s, lookupAggregate(aggs, s.ID))
	}
	return out, nil
}

// lookupAggregate returns the rollup for id, or nil when the spot has no
// approved reviews. Map absence is the sentinel, not a zero value.
func lookupAggregate(aggs map[int64]domain.ReviewAggregate, id int64) *domain.ReviewAggregate {
	if agg, ok := aggs[id]; ok {
		return &agg
	}
	return nil
}
