package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/foodspot-service/internal/domain"
	"github.com/foodspot-service/internal/domain/repository"
)

// StatsUsecase serves the directory statistics snapshot with a short-lived
// cache in front of the aggregate queries.
type StatsUsecase struct {
	statsRepo repository.StatsRepository
	cacheRepo repository.CacheRepository
	cacheTTL  time.Duration
	logger    *zap.Logger
}

func NewStatsUsecase(
	statsRepo repository.StatsRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *StatsUsecase {
	return &StatsUsecase{
		statsRepo: statsRepo,
		cacheRepo: cacheRepo,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// GetStatistics returns the snapshot, preferring the cache. Cache failures
// fall through to the store.
func (u *StatsUsecase) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	if u.cacheRepo != nil {
		cached, err := u.cacheRepo.GetStats(ctx)
		if err != nil {
			u.logger.Warn("Stats cache read failed", zap.Error(err))
		} else if cached != nil {
			u.logger.Debug("Statistics served from cache")
			return cached, nil
		}
	}

	stats, err := u.statsRepo.GetStatistics(ctx)
	if err != nil {
		return nil, err
	}

	if u.cacheRepo != nil {
		if err := u.cacheRepo.SetStats(ctx, stats, u.cacheTTL); err != nil {
			u.logger.Warn("Stats cache write failed", zap.Error(err))
		}
	}

	return stats, nil
}

// RefreshStatistics recomputes the snapshot and overwrites the cache. Used
// by the worker when review events arrive.
func (u *StatsUsecase) RefreshStatistics(ctx context.Context) error {
	stats, err := u.statsRepo.GetStatistics(ctx)
	if err != nil {
		return err
	}

	if u.cacheRepo != nil {
		if err := u.cacheRepo.SetStats(ctx, stats, u.cacheTTL); err != nil {
			return err
		}
	}

	u.logger.Info("Statistics refreshed",
		zap.Int("total_spots", stats.TotalSpots),
		zap.Float64("average_rating", stats.AverageRating))
	return nil
}
