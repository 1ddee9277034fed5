package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/foodspot-service/internal/domain"
	"github.com/foodspot-service/internal/domain/repository"
	"github.com/foodspot-service/internal/pkg/utils"
)

type statsRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewStatsRepository(db *DB, logger *zap.Logger) repository.StatsRepository {
	return &statsRepository{
		db:     db,
		logger: logger,
	}
}

// GetStatistics computes the aggregate snapshot over active spots.
func (r *statsRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats := &domain.Statistics{
		ByCuisine:    make(map[string]int),
		ByPriceRange: make(map[string]int),
	}

	totalsQuery := `
		SELECT COUNT(*), COALESCE(AVG(rating), 0)
		FROM food_spots
		WHERE is_active = TRUE`

	var avg float64
	if err := r.db.QueryRowContext(ctx, totalsQuery).Scan(&stats.TotalSpots, &avg); err != nil {
		r.logger.Error("failed to get spot totals", zap.Error(err))
		return nil, fmt.Errorf("query spot totals: %w", err)
	}
	stats.AverageRating = utils.Round2(avg)

	if err := r.fillCuisineStats(ctx, stats); err != nil {
		return nil, err
	}
	if err := r.fillPriceStats(ctx, stats); err != nil {
		return nil, err
	}
	if err := r.fillRatingDistribution(ctx, stats); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *statsRepository) fillCuisineStats(ctx context.Context, stats *domain.Statistics) error {
	query := `
		SELECT cuisine_type, COUNT(*) AS count
		FROM food_spots
		WHERE is_active = TRUE
		GROUP BY cuisine_type
		ORDER BY count DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to get cuisine stats", zap.Error(err))
		return fmt.Errorf("query cuisine stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cuisine string
		var count int
		if err := rows.Scan(&cuisine, &count); err != nil {
			return fmt.Errorf("scan cuisine stats: %w", err)
		}
		stats.ByCuisine[cuisine] = count
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("cuisine stats rows error: %w", err)
	}

	return nil
}

func (r *statsRepository) fillPriceStats(ctx context.Context, stats *domain.Statistics) error {
	query := `
		SELECT price_range, COUNT(*) AS count
		FROM food_spots
		WHERE is_active = TRUE
		GROUP BY price_range
		ORDER BY price_range`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to get price stats", zap.Error(err))
		return fmt.Errorf("query price stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tier string
		var count int
		if err := rows.Scan(&tier, &count); err != nil {
			return fmt.Errorf("scan price stats: %w", err)
		}
		stats.ByPriceRange[tier] = count
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("price stats rows error: %w", err)
	}

	return nil
}

func (r *statsRepository) fillRatingDistribution(ctx context.Context, stats *domain.Statistics) error {
	// Buckets are disjoint: the 4-5 bucket is upper-bound exclusive, so a
	// rating of exactly 5.0 is counted once, in the first bucket.
	query := `
		SELECT
			COUNT(*) FILTER (WHERE rating = 5.0),
			COUNT(*) FILTER (WHERE rating >= 4.0 AND rating < 5.0),
			COUNT(*) FILTER (WHERE rating >= 3.0 AND rating < 4.0),
			COUNT(*) FILTER (WHERE rating < 3.0)
		FROM food_spots
		WHERE is_active = TRUE`

	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.RatingDistribution.Five,
		&stats.RatingDistribution.FourToFive,
		&stats.RatingDistribution.ThreeToFour,
		&stats.RatingDistribution.BelowThree,
	)
	if err != nil {
		r.logger.Error("failed to get rating distribution", zap.Error(err))
		return fmt.Errorf("query rating distribution: %w", err)
	}

	return nil
}
