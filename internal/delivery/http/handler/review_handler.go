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

// ReviewHandler serves the review endpoints.
type ReviewHandler struct {
	reviewUC *usecase.ReviewUsecase
	logger   *zap.Logger
}

func NewReviewHandler(reviewUC *usecase.ReviewUsecase, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: reviewUC,
		logger:   logger,
	}
}

// List godoc
// @Summary List approved reviews
// @Tags Reviews
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.ReviewResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/reviews [get]
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	reviews, err := h.reviewUC.ListApproved(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, reviews, &utils.Meta{Total: len(reviews)})
}

// Create godoc
// @Summary Create a review
// @Description Posts a review for an existing food spot. Reviews are approved immediately.
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Review payload"
// @Success 201 {object} utils.SuccessResponse{data=dto.ReviewResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/reviews [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	review, err := h.reviewUC.Create(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, review)
}

// ByFoodSpot godoc
// @Summary Reviews for a food spot (query form)
// @Description Filter form of the listing: an unknown foodspot_id yields an empty list, not a 404
// @Tags Reviews
// @Produce json
// @Param foodspot_id query int true "Food spot ID"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.ReviewResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/reviews/by_foodspot [get]
func (h *ReviewHandler) ByFoodSpot(c *fiber.Ctx) error {
	raw := c.Query("foodspot_id")
	if raw == "" {
		return utils.SendError(c, errors.ErrMissingFoodSpotID)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return utils.SendError(c, errors.ErrMissingFoodSpotID)
	}

	reviews, err := h.reviewUC.FilterByFoodSpot(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, reviews, &utils.Meta{Total: len(reviews)})
}

// CreateForSpot godoc
// @Summary Create a review for a food spot
// @Description Posts a review for the spot in the path. The body's foodspot_id, if present, is ignored.
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path int true "Food spot ID"
// @Param request body dto.CreateReviewRequest true "Review payload"
// @Success 201 {object} utils.SuccessResponse{data=dto.ReviewResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/foodspots/{id}/reviews [post]
func (h *ReviewHandler) CreateForSpot(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	req.FoodSpotID = id

	review, err := h.reviewUC.Create(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, review)
}

// ListForSpot godoc
// @Summary Reviews for a food spot
// @Tags Reviews
// @Produce json
// @Param id path int true "Food spot ID"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.ReviewResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/foodspots/{id}/reviews [get]
func (h *ReviewHandler) ListForSpot(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	reviews, err := h.reviewUC.ListByFoodSpot(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, reviews, &utils.Meta{Total: len(reviews)})
}
