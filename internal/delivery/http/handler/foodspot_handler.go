package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/foodspot-service/internal/pkg/errors"
	"github.com/foodspot-service/internal/pkg/utils"
	"github.com/foodspot-service/internal/usecase"
	"github.com/foodspot-service/internal/usecase/dto"
)

// FoodSpotHandler serves the food spot directory endpoints.
type FoodSpotHandler struct {
	spotUC *usecase.FoodSpotUsecase
	logger *zap.Logger
}

func NewFoodSpotHandler(spotUC *usecase.FoodSpotUsecase, logger *zap.Logger) *FoodSpotHandler {
	return &FoodSpotHandler{
		spotUC: spotUC,
		logger: logger,
	}
}

// List godoc
// @Summary List food spots
// @Description Returns active food spots, optionally filtered by cuisine type
// @Tags FoodSpots
// @Produce json
// @Param cuisine_type query string false "Cuisine type code"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.SpotResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/foodspots [get]
func (h *FoodSpotHandler) List(c *fiber.Ctx) error {
	spots, err := h.spotUC.List(c.Context(), c.Query("cuisine_type"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, spots, &utils.Meta{Total: len(spots)})
}

// Create godoc
// @Summary Create a food spot
// @Tags FoodSpots
// @Accept json
// @Produce json
// @Param request body dto.CreateFoodSpotRequest true "Food spot payload"
// @Success 201 {object} utils.SuccessResponse{data=dto.SpotDetailResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/foodspots [post]
func (h *FoodSpotHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateFoodSpotRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	spot, err := h.spotUC.Create(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, spot)
}

// GetByID godoc
// @Summary Get a food spot
// @Tags FoodSpots
// @Produce json
// @Param id path int true "Food spot ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.SpotDetailResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/foodspots/{id} [get]
func (h *FoodSpotHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	spot, err := h.spotUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, spot, nil)
}

// Update godoc
// @Summary Update a food spot
// @Tags FoodSpots
// @Accept json
// @Produce json
// @Param id path int true "Food spot ID"
// @Param request body dto.CreateFoodSpotRequest true "Food spot payload"
// @Success 200 {object} utils.SuccessResponse{data=dto.SpotDetailResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/foodspots/{id} [put]
func (h *FoodSpotHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.CreateFoodSpotRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	spot, err := h.spotUC.Update(c.Context(), id, &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, spot, nil)
}

// Delete godoc
// @Summary Deactivate a food spot
// @Description Soft-deletes the spot; it disappears from all listings
// @Tags FoodSpots
// @Param id path int true "Food spot ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/foodspots/{id} [delete]
func (h *FoodSpotHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.spotUC.Deactivate(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Categories godoc
// @Summary List cuisine categories
// @Tags FoodSpots
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.CuisineCategory}
// @Router /api/v1/foodspots/categories [get]
func (h *FoodSpotHandler) Categories(c *fiber.Ctx) error {
	categories := h.spotUC.Categories()
	return utils.SendSuccess(c, categories, &utils.Meta{Total: len(categories)})
}

// Nearest godoc
// @Summary Nearest food spots
// @Description Returns the closest spots to a point, closest first
// @Tags Spatial
// @Accept json
// @Produce json
// @Param request body dto.NearestRequest true "Query point and optional limit"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.SpotResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/foodspots/nearest [post]
func (h *FoodSpotHandler) Nearest(c *fiber.Ctx) error {
	var req dto.NearestRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	spots, err := h.spotUC.Nearest(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, spots, &utils.Meta{Total: len(spots)})
}

// WithinRadius godoc
// @Summary Food spots within a radius
// @Description Returns spots within radius_meters of a point, closest first
// @Tags Spatial
// @Accept json
// @Produce json
// @Param request body dto.WithinRadiusRequest true "Query point, optional radius and cuisine filter"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.SpotResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/foodspots/within_radius [post]
func (h *FoodSpotHandler) WithinRadius(c *fiber.Ctx) error {
	var req dto.WithinRadiusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	spots, err := h.spotUC.WithinRadius(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, spots, &utils.Meta{Total: len(spots)})
}

// WithinBounds godoc
// @Summary Food spots within a polygon
// @Description Returns spots covered by the polygon, boundary inclusive. Coordinates are [longitude, latitude] pairs.
// @Tags Spatial
// @Accept json
// @Produce json
// @Param request body dto.WithinBoundsRequest true "Polygon ring"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.SpotResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/foodspots/within_bounds [post]
func (h *FoodSpotHandler) WithinBounds(c *fiber.Ctx) error {
	var req dto.WithinBoundsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	spots, err := h.spotUC.WithinBounds(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, spots, &utils.Meta{Total: len(spots)})
}

// Search godoc
// @Summary Search food spots
// @Description Case-insensitive text search over name, description and address with facet filters
// @Tags FoodSpots
// @Produce json
// @Param q query string true "Search query"
// @Param cuisine_type query string false "Cuisine type code"
// @Param min_rating query number false "Minimum rating; ignored when unparsable"
// @Param price_range query string false "Price tier"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.SpotResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/foodspots/search [get]
func (h *FoodSpotHandler) Search(c *fiber.Ctx) error {
	req := dto.SearchRequest{
		Query:       c.Query("q"),
		CuisineType: c.Query("cuisine_type"),
		MinRating:   c.Query("min_rating"),
		PriceRange:  c.Query("price_range"),
	}

	spots, err := h.spotUC.Search(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, spots, &utils.Meta{Total: len(spots)})
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.ErrInvalidRequest
	}
	return id, nil
}
