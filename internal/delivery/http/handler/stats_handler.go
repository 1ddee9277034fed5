package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/foodspot-service/internal/pkg/utils"
	"github.com/foodspot-service/internal/usecase"
)

// StatsHandler serves the directory statistics endpoint.
type StatsHandler struct {
	statsUC *usecase.StatsUsecase
	logger  *zap.Logger
}

func NewStatsHandler(statsUC *usecase.StatsUsecase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStatistics godoc
// @Summary Directory statistics
// @Description Aggregate snapshot over active spots: totals, per-cuisine and per-price counts, rating distribution
// @Tags Statistics
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.Statistics}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/foodspots/statistics [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.statsUC.GetStatistics(c.Context())
	if err != nil {
		h.logger.Error("Failed to get statistics", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}
